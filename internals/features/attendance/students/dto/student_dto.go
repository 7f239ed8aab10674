package dto

import (
	"strings"

	m "absensiku_backend/internals/features/attendance/students/model"
)

/* =========================================================
   UPSERT (insert-or-replace keyed by roll)
   ========================================================= */

type UpsertStudentRequest struct {
	Roll  string `json:"roll" form:"roll" validate:"required,min=1,max=50"`
	Name  string `json:"name" form:"name" validate:"required,min=1,max=255"`
	Class string `json:"class" form:"class" validate:"omitempty,max=100"`
}

func (r *UpsertStudentRequest) Normalize() {
	r.Roll = strings.TrimSpace(r.Roll)
	r.Name = strings.TrimSpace(r.Name)
	r.Class = strings.TrimSpace(r.Class)
}

func (r *UpsertStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentRoll:  r.Roll,
		StudentName:  r.Name,
		StudentClass: r.Class,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	Roll  string `json:"roll"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

func FromStudentModel(s m.StudentModel) StudentResponse {
	return StudentResponse{
		Roll:  s.StudentRoll,
		Name:  s.StudentName,
		Class: s.StudentClass,
	}
}

func FromStudentModels(rows []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, FromStudentModel(s))
	}
	return out
}
