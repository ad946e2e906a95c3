package model

// Topic 教学主题，班级下的作业/测验分组
type Topic struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	ClassID uint   `gorm:"not null;index" json:"classId"`
}

func (Topic) TableName() string {
	return "topics"
}
