package model

import "time"

// Assignment 作业，due_date 只取日期部分（yyyy-mm-dd）
type Assignment struct {
	BaseModel
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"dueDate"`
	TopicID     uint      `gorm:"not null;index" json:"topicId"`
}

func (Assignment) TableName() string {
	return "assignments"
}
