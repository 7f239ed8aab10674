package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	m "absensiku_backend/internals/features/attendance/records/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
   CREATE (mark attendance)
   ========================================================= */

type MarkAttendanceRequest struct {
	Roll  string `json:"roll" form:"roll" validate:"required,min=1,max=50"`
	Name  string `json:"name" form:"name" validate:"omitempty,max=255"`
	Class string `json:"class" form:"class" validate:"omitempty,max=100"`
	Ts    int64  `json:"ts" form:"ts" validate:"required,gt=0"`
	Date  string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
}

func (r *MarkAttendanceRequest) Normalize() {
	r.Roll = strings.TrimSpace(r.Roll)
	r.Name = strings.TrimSpace(r.Name)
	r.Class = strings.TrimSpace(r.Class)
	r.Date = strings.TrimSpace(r.Date)
}

// ToModel mengasumsikan Date sudah lolos validasi format
func (r *MarkAttendanceRequest) ToModel() m.AttendanceModel {
	d, _ := time.Parse(dateLayout, r.Date)
	return m.AttendanceModel{
		AttendanceRoll:  r.Roll,
		AttendanceName:  r.Name,
		AttendanceClass: r.Class,
		AttendanceTs:    r.Ts,
		AttendanceDate:  datatypes.Date(d),
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type AttendanceResponse struct {
	ID    int64  `json:"id"`
	Roll  string `json:"roll"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Ts    int64  `json:"ts"`
	Date  string `json:"date"`
}

func FromAttendanceModel(a m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:    a.AttendanceID,
		Roll:  a.AttendanceRoll,
		Name:  a.AttendanceName,
		Class: a.AttendanceClass,
		Ts:    a.AttendanceTs,
		Date:  time.Time(a.AttendanceDate).Format(dateLayout),
	}
}

func FromAttendanceModels(rows []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, FromAttendanceModel(a))
	}
	return out
}
