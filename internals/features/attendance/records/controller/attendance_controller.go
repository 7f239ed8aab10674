// internals/features/attendance/records/controller/attendance_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "absensiku_backend/internals/features/attendance/records/dto"
	attendanceModel "absensiku_backend/internals/features/attendance/records/model"
	helper "absensiku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

// urutan tampilan: kejadian terbaru dulu; id DESC sebagai tiebreak
// supaya stabil saat ts sama (urutan insert dibalik)
const listOrder = "attendance_ts DESC, attendance_id DESC"

// LIST
// GET /api/attendance — semua absensi, terbaru dulu
func (h *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	var rows []attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).
		Order(listOrder).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, attendanceDTO.FromAttendanceModels(rows))
}

// LIST BY ROLL
// GET /api/attendance/:roll — absensi satu siswa, terbaru dulu
func (h *AttendanceController) ListAttendanceByRoll(c *fiber.Ctx) error {
	roll := strings.TrimSpace(c.Params("roll"))
	if roll == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Roll tidak valid")
	}

	var rows []attendanceModel.AttendanceModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("attendance_roll = ?", roll).
		Order(listOrder).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	return helper.JsonOK(c, attendanceDTO.FromAttendanceModels(rows))
}

/* =========================================================
   MARK
   POST /api/attendance
   Constraint uq_attendance_roll_date yang jadi penentu:
   duplikat (roll, tanggal) → 409, tidak pernah ditelan diam-diam.
   ========================================================= */
func (h *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Absensi sudah tercatat untuk siswa ini pada tanggal tersebut.")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal mencatat absensi")
	}

	return helper.JsonCreated(c, attendanceDTO.FromAttendanceModel(m))
}
