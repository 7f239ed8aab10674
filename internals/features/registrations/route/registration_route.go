// internals/features/registrations/route/registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	registrationController "absensiku_backend/internals/features/registrations/controller"
	registrationService "absensiku_backend/internals/features/registrations/service"
	"absensiku_backend/internals/middlewares"
)

func RegistrationRoutes(r fiber.Router, svc *registrationService.RegistrationService) {
	ctl := &registrationController.RegistrationController{Service: svc}

	registrations := r.Group("/registrations")
	registrations.Get("/", ctl.ListRegistrations)                                      // GET  /api/registrations
	registrations.Post("/", middlewares.RegisterRateLimiter(), ctl.CreateRegistration) // POST /api/registrations
}

// RegistrationRoutesDisabled dipasang saat store lokal gagal dibuka:
// fitur dimatikan, bukan bikin proses ikut mati.
func RegistrationRoutesDisabled(r fiber.Router) {
	registrations := r.Group("/registrations")
	registrations.All("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Fitur pendaftaran sedang tidak tersedia (store lokal gagal dibuka).",
		})
	})
}
