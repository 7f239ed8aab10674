// internals/features/attendance/records/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "absensiku_backend/internals/features/attendance/records/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &attendanceController.AttendanceController{DB: db}

	attendance := r.Group("/attendance")
	attendance.Get("/", ctl.ListAttendance)            // GET  /api/attendance
	attendance.Get("/:roll", ctl.ListAttendanceByRoll) // GET  /api/attendance/:roll
	attendance.Post("/", ctl.MarkAttendance)           // POST /api/attendance
}
