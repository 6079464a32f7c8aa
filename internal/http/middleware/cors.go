package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows every origin, method and requested header with credentials.
// Origins are reflected because a wildcard cannot be combined with credentials.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		}, ","),
		AllowCredentials: true,
	})
}
