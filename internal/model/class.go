package model

// Class 班级，归属唯一的教师
type Class struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	TeacherID uint   `gorm:"not null;index" json:"teacherId"`
}

func (Class) TableName() string {
	return "classes"
}
