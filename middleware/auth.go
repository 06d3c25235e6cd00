package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerIDKey is the gin context key holding the authenticated owner's id.
const OwnerIDKey = "ownerID"

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "pgstay-dev-secret"
	}
	return []byte(secret)
}

// OwnerClaims are the JWT claims issued at login.
type OwnerClaims struct {
	OwnerID uint   `json:"ownerId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// IssueOwnerToken signs a 24h access token for an owner account.
func IssueOwnerToken(ownerID uint, email string) (string, error) {
	claims := OwnerClaims{
		OwnerID: ownerID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pgstay-backend",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseOwnerToken validates a token string and returns its claims.
func ParseOwnerToken(tokenString string) (*OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtSecret(), nil
		})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*OwnerClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// OwnerAuth guards the admin console routes with a Bearer token.
func OwnerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "invalid authorization header, expected: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := ParseOwnerToken(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.JSONError(c, http.StatusUnauthorized, "token expired")
			} else {
				utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(OwnerIDKey, claims.OwnerID)
		c.Next()
	}
}

// OwnerID reads the authenticated owner id set by OwnerAuth.
func OwnerID(c *gin.Context) uint {
	if v, ok := c.Get(OwnerIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
