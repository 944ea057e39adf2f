package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const HeaderContentSecurityPolicy = "Content-Security-Policy"

// SecurityHeaders - выставляет Content-Security-Policy на каждый ответ.
// policy ограничивает только frame-ancestors: страницы встраиваются в iframe
// сайтов infectieradar.
func SecurityHeaders(policy string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(HeaderContentSecurityPolicy, policy)
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		return c.Next()
	}
}
