package model

// AnswerChoices 正确答案下标到选项字母的映射
var AnswerChoices = [4]string{"A", "B", "C", "D"}

// Question 单选题；CorrectAnswer 存 0..3，对应 A..D
type Question struct {
	BaseModel
	QuestionText  string `gorm:"type:text;not null" json:"questionText"`
	CorrectAnswer int    `gorm:"not null" json:"correctAnswer"`
	AAnswerText   string `gorm:"size:255" json:"aAnswerText"`
	BAnswerText   string `gorm:"size:255" json:"bAnswerText"`
	CAnswerText   string `gorm:"size:255" json:"cAnswerText"`
	DAnswerText   string `gorm:"size:255" json:"dAnswerText"`
	QuizID        uint   `gorm:"not null;index" json:"quizId"`
}

func (Question) TableName() string {
	return "questions"
}

// ValidAnswerIndex 校验答案下标是否在 A..D 范围内
func ValidAnswerIndex(idx int) bool {
	return idx >= 0 && idx < len(AnswerChoices)
}
