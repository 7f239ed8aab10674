// internals/features/attendance/students/controller/student_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentDTO "absensiku_backend/internals/features/attendance/students/dto"
	studentModel "absensiku_backend/internals/features/attendance/students/model"
	helper "absensiku_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

// LIST
// GET /api/students — semua siswa, urut roll ASC
func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	var rows []studentModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("student_roll ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	return helper.JsonOK(c, studentDTO.FromStudentModels(rows))
}

/* =========================================================
   UPSERT
   POST /api/students
   insert-or-replace keyed by roll (name & class ditimpa)
   ========================================================= */
func (h *StudentController) UpsertStudent(c *fiber.Ctx) error {
	var req studentDTO.UpsertStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_roll"}},
			DoUpdates: clause.AssignmentColumns([]string{"student_name", "student_class"}),
		}).
		Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal menyimpan siswa")
	}

	return helper.JsonCreated(c, studentDTO.FromStudentModel(m))
}
