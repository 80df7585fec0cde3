package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the error envelope every endpoint uses: {"error": "..."}.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}
