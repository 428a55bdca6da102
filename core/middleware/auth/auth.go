package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// Header is the request header carrying the API key.
const Header = "X-API-Key"

// Config configures the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured API key.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)
	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + Header,
		Next: func(c *fiber.Ctx) bool {
			return len(expected) == 0
		},
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), expected) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		},
	})
}
