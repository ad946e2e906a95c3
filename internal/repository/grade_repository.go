package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type GradeRepository struct {
	DB *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{DB: db}
}

func (r *GradeRepository) Create(grade *model.Grade) error {
	return r.DB.Create(grade).Error
}

// ListByClass 经作业→主题挂回班级
func (r *GradeRepository) ListByClass(classID uint) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.DB.
		Joins("JOIN assignments ON assignments.id = assignment_grades.assignment_id").
		Joins("JOIN topics ON topics.id = assignments.topic_id").
		Where("topics.class_id = ?", classID).
		Find(&grades).Error
	return grades, err
}
