package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(student *model.Student) error {
	return r.DB.Create(student).Error
}

func (r *StudentRepository) Enroll(studentID, classID uint) error {
	return r.DB.Create(&model.Enrollment{StudentID: studentID, ClassID: classID}).Error
}

func (r *StudentRepository) ListByClass(classID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.class_id = ?", classID).
		Find(&students).Error
	return students, err
}

func (r *StudentRepository) IsEnrolled(studentID, classID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("student_id = ? AND class_id = ?", studentID, classID).
		Count(&count).Error
	return count > 0, err
}
