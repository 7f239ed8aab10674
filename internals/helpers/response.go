package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   JSON responses (wire shape polos)
   Kontrak klien lama: list = array polos,
   error = {"message": ...}
=================================*/

// JsonOK: kirim data apa adanya (200)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: kirim data apa adanya (201)
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonMessage: {"message": ...} dengan status bebas
func JsonMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// JsonError: error generic {"message": ...}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// JsonErrorWithDetail: {"message": ..., "error": ...} untuk 500 export dsb
func JsonErrorWithDetail(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	parts := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		parts = append(parts, fieldErr.Field()+" ("+fieldErr.Tag()+")")
	}
	return JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+strings.Join(parts, ", "))
}
