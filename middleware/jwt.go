package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a signed session token for the user
func GenerateJWT(username, secret string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// JWTMiddleware checks for a valid token in the request. The Authorization
// header carries the raw token, without a "Bearer " prefix; existing clients
// send it that way, so the format is kept as-is.
func JWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		if tokenString == "" {
			return JsonMessage(c, fiber.StatusUnauthorized, "Token missing")
		}

		// Parse and validate the token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return JsonMessage(c, fiber.StatusUnauthorized, "Token invalid")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["username"] == nil {
			return JsonMessage(c, fiber.StatusUnauthorized, "Token invalid")
		}

		username, ok := claims["username"].(string)
		if !ok {
			return JsonMessage(c, fiber.StatusUnauthorized, "Token invalid")
		}

		// The username is not re-checked against the user table here; the
		// claim alone identifies the caller for the rest of the request.
		c.Locals("username", username)

		return c.Next()
	}
}

// JsonMessage writes the flat {"message": ...} body every non-data response uses
func JsonMessage(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse reports field-level validation failures
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed!",
		"errors":  errors,
	})
}
