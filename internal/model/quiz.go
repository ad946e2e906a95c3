package model

// Quiz 测验，包含若干单选题
type Quiz struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	TopicID uint   `gorm:"not null;index" json:"topicId"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
