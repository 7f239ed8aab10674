// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "absensiku_backend/internals/features/attendance/records/route"
	studentRoute "absensiku_backend/internals/features/attendance/students/route"
	exportRoute "absensiku_backend/internals/features/exports/route"
	exportService "absensiku_backend/internals/features/exports/service"
	registrationRoute "absensiku_backend/internals/features/registrations/route"
	registrationService "absensiku_backend/internals/features/registrations/service"
)

// SetupRoutes memasang seluruh permukaan API.
// regSvc boleh nil: artinya store pendaftaran gagal dibuka dan fitur
// pendaftaran dinonaktifkan (endpoint lain tetap jalan).
func SetupRoutes(app *fiber.App, db *gorm.DB, exporter *exportService.CSVExporter, regSvc *registrationService.RegistrationService) {
	api := app.Group("/api")

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(api, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(api, db)

	log.Println("[INFO] Mounting Export routes...")
	exportRoute.ExportRoutes(api, exporter)

	if regSvc != nil {
		log.Println("[INFO] Mounting Registration routes...")
		registrationRoute.RegistrationRoutes(api, regSvc)
	} else {
		log.Println("[WARN] Store pendaftaran tidak tersedia, fitur registrasi dinonaktifkan")
		registrationRoute.RegistrationRoutesDisabled(api)
	}
}
