// internals/features/attendance/students/controller/student_import_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "absensiku_backend/internals/features/attendance/students/model"
	helper "absensiku_backend/internals/helpers"
)

/* =========================================================
   IMPORT XLSX
   POST /api/students/import  (multipart field "file")
   Kolom: A=roll, B=name, C=class. Baris pertama = header.
   Baris tanpa roll/name dilewati, sisanya di-upsert per roll.
   ========================================================= */
func (h *StudentController) ImportStudents(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File xlsx tidak ditemukan di form field 'file'")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file upload")
	}
	defer f.Close()

	students, err := parseStudentsWorkbook(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file xlsx: "+err.Error())
	}

	imported := 0
	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for i := range students {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "student_roll"}},
				DoUpdates: clause.AssignmentColumns([]string{"student_name", "student_class"}),
			}).Create(&students[i]).Error; err != nil {
				return err
			}
			imported++
		}
		return nil
	}); err != nil {
		log.Printf("import siswa gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengimpor siswa")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Import berhasil",
		"imported_count": imported,
	})
}

// parseStudentsWorkbook membaca sheet pertama menjadi daftar siswa.
func parseStudentsWorkbook(r io.Reader) ([]studentModel.StudentModel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("gagal menutup file xlsx: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("file tidak punya sheet")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	students := make([]studentModel.StudentModel, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		var roll, name, class string
		if len(row) > 0 {
			roll = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			class = strings.TrimSpace(row[2])
		}

		if roll == "" || name == "" {
			log.Printf("lewati baris %d: roll/nama kosong (roll=%q nama=%q)", i+1, roll, name)
			continue
		}

		students = append(students, studentModel.StudentModel{
			StudentRoll:  roll,
			StudentName:  name,
			StudentClass: class,
		})
	}
	return students, nil
}
