package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, id).Error
	return &assignment, err
}

func (r *AssignmentRepository) ListByTopic(topicID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Where("topic_id = ?", topicID).Find(&assignments).Error
	return assignments, err
}

// ListByClass 班级详情页聚合用
func (r *AssignmentRepository) ListByClass(classID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Joins("JOIN topics ON topics.id = assignments.topic_id").
		Where("topics.class_id = ?", classID).
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) ListByTeacher(teacherID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Joins("JOIN topics ON topics.id = assignments.topic_id").
		Joins("JOIN classes ON classes.id = topics.class_id").
		Where("classes.teacher_id = ?", teacherID).
		Find(&assignments).Error
	return assignments, err
}
