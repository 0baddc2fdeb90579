package serverutils

import "github.com/gofiber/fiber/v2"

func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	}
}

func ErrorResponse(message string, retryable bool, details interface{}) fiber.Map {
	m := fiber.Map{
		"success":   false,
		"message":   message,
		"retryable": retryable,
	}
	if details != nil {
		m["details"] = details
	}
	return m
}
