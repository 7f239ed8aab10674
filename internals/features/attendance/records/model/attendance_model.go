// internals/features/attendance/records/model/attendance_model.go
package model

import (
	"gorm.io/datatypes"
)

// NOTE:
// - name & class adalah snapshot saat absen dicatat (denormalisasi, tanpa FK ke students)
// - uq_attendance_roll_date: maksimal satu absensi per (roll, tanggal)
// - append-only: tidak ada update/delete (absensi adalah fakta yang sudah terjadi)
type AttendanceModel struct {
	AttendanceID    int64          `gorm:"column:attendance_id;primaryKey;autoIncrement" json:"attendance_id"`
	AttendanceRoll  string         `gorm:"column:attendance_roll;type:varchar(50);not null;uniqueIndex:uq_attendance_roll_date,priority:1" json:"attendance_roll"`
	AttendanceName  string         `gorm:"column:attendance_name;type:varchar(255)" json:"attendance_name"`
	AttendanceClass string         `gorm:"column:attendance_class;type:varchar(100)" json:"attendance_class"`
	AttendanceTs    int64          `gorm:"column:attendance_ts;not null" json:"attendance_ts"`
	AttendanceDate  datatypes.Date `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance_roll_date,priority:2" json:"attendance_date"`
}

func (AttendanceModel) TableName() string { return "attendance" }
