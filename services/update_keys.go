package services

import "strings"

// toSnake converts a camelCase JSON key to its snake_case column name.
func toSnake(key string) string {
	var sb strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// normalizeUpdates maps incoming JSON keys onto column names so partial
// update payloads like {"basePrice": 9000} reach gorm as base_price.
func normalizeUpdates(updates map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		out[toSnake(k)] = v
	}
	return out
}
