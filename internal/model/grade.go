package model

// Grade 某学生在某次作业上的得分记录。
// (student, assignment) 不做唯一约束，重复提交会追加记录。
type Grade struct {
	BaseModel
	StudentID    uint    `gorm:"not null;index" json:"studentId"`
	AssignmentID uint    `gorm:"not null;index" json:"assignmentId"`
	Score        float64 `gorm:"not null" json:"score"`
}

func (Grade) TableName() string {
	return "assignment_grades"
}
