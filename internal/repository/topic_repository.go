package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) Create(topic *model.Topic) error {
	return r.DB.Create(topic).Error
}

func (r *TopicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, id).Error
	return &topic, err
}

func (r *TopicRepository) ListByClass(classID uint) ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Where("class_id = ?", classID).Find(&topics).Error
	return topics, err
}

// ListByTeacher 跨班级列出教师的全部主题
func (r *TopicRepository) ListByTeacher(teacherID uint) ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.
		Joins("JOIN classes ON classes.id = topics.class_id").
		Where("classes.teacher_id = ?", teacherID).
		Find(&topics).Error
	return topics, err
}
