package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the standard envelope used for non-2xx replies.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes a failure envelope with a short message.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return JsonResponse(c, statusCode, false, message, nil)
}

// ValidationErrorResponse reports per-field validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
