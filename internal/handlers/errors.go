package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockwatch-go-api/internal/models"
)

// CustomErrorHandler shapes every unhandled Fiber error into the API's error
// envelope.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}
