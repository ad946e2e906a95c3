package model

// Student 学生，通过 Enrollment 挂到班级
type Student struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Student) TableName() string {
	return "students"
}

// Enrollment 学生-班级关联
type Enrollment struct {
	BaseModel
	StudentID uint `gorm:"not null;index:idx_enroll_student_class" json:"studentId"`
	ClassID   uint `gorm:"not null;index:idx_enroll_student_class" json:"classId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
