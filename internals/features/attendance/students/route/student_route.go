// internals/features/attendance/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "absensiku_backend/internals/features/attendance/students/controller"
)

/*
Mount contoh: StudentRoutes(app.Group("/api"), db)
*/
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &studentController.StudentController{DB: db}

	students := r.Group("/students")
	students.Get("/", ctl.ListStudents)          // GET  /api/students
	students.Post("/", ctl.UpsertStudent)        // POST /api/students
	students.Post("/import", ctl.ImportStudents) // POST /api/students/import (xlsx)
}
