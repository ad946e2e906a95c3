package model

// QuizImport 每次CSV导入的审计记录，原始文件另行归档
type QuizImport struct {
	UUIDBase
	QuizID      uint   `gorm:"not null;index" json:"quizId"`
	Filename    string `gorm:"size:255;not null" json:"filename"`
	RowCount    int    `gorm:"not null" json:"rowCount"`
	SkippedRows int    `gorm:"not null" json:"skippedRows"`
	ArchiveURL  string `gorm:"size:255" json:"archiveUrl"`
}

func (QuizImport) TableName() string {
	return "quiz_imports"
}
