package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard success envelope: { success, data }.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the standard error envelope: { success, message }.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONFieldErrors writes a validation failure with a field->message map so
// forms can surface per-field errors.
func JSONFieldErrors(c *gin.Context, code int, fields map[string]string) {
	c.JSON(code, gin.H{"success": false, "message": "validation failed", "errors": fields})
}
