package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTAuth verifies the bearer token and resolves the caller identity once
// per request into Locals("user_id"). Every downstream ownership and
// visibility check reads that single value; the token is never parsed
// twice. Requests without an Authorization header pass through anonymous,
// RequireAuth decides whether that is acceptable per route.
func JWTAuth(secret string) fiber.Handler {
	type authClaims struct {
		ID string `json:"id,omitempty"`
		jwt.RegisteredClaims
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing JWT secret")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims authClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.ID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing id claim")
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
