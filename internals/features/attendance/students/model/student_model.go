// internals/features/attendance/students/model/student_model.go
package model

// NOTE:
// - roll dipakai sebagai primary key (identitas stabil siswa), bukan surrogate id
// - tidak ada soft delete: tidak ada endpoint hapus siswa
type StudentModel struct {
	StudentRoll  string `gorm:"column:student_roll;type:varchar(50);primaryKey" json:"roll"`
	StudentName  string `gorm:"column:student_name;type:varchar(255);not null" json:"name"`
	StudentClass string `gorm:"column:student_class;type:varchar(100)" json:"class"`
}

func (StudentModel) TableName() string { return "students" }
