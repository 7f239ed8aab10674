// internals/features/registrations/controller/registration_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	registrationDTO "absensiku_backend/internals/features/registrations/dto"
	registrationService "absensiku_backend/internals/features/registrations/service"
	"absensiku_backend/internals/features/registrations/store"
	helper "absensiku_backend/internals/helpers"
)

var validate = validator.New()

type RegistrationController struct {
	Service *registrationService.RegistrationService
}

/* =========================================================
   CREATE
   POST /api/registrations
   201 → tersimpan lokal; message naik/turun sesuai hasil export
   409 → duplikat email/nomor (pesan email menang kalau dua-duanya)
   ========================================================= */
func (h *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var req registrationDTO.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := h.Service.Register(c.UserContext(), registrationService.RegisterInput{
		Name:   req.Name,
		Email:  req.Email,
		Number: req.Number,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar.")
		case errors.Is(err, store.ErrNumberTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Nomor HP sudah terdaftar.")
		}
		log.Printf("pendaftaran gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Pendaftaran gagal diproses")
	}

	// insert lokal sudah final; leg export cuma menentukan bunyi pesan
	message := "Pendaftaran berhasil!"
	if result.ExportErr != nil {
		log.Printf("export csv best-effort gagal: %v", result.ExportErr)
		message = "Pendaftaran berhasil, tapi gagal menyimpan CSV di server."
	} else if result.ExportMessage != "" {
		message = "Pendaftaran berhasil! " + result.ExportMessage
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    registrationDTO.FromRegistration(result.Registration),
	})
}

// LIST
// GET /api/registrations — snapshot penuh, urut id
func (h *RegistrationController) ListRegistrations(c *fiber.Ctx) error {
	regs, err := h.Service.Store.All(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca data pendaftaran")
	}
	return helper.JsonOK(c, registrationDTO.FromRegistrations(regs))
}
