package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) ListByTopic(topicID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("topic_id = ?", topicID).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) ListByTeacher(teacherID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.
		Joins("JOIN topics ON topics.id = quizzes.topic_id").
		Joins("JOIN classes ON classes.id = topics.class_id").
		Where("classes.teacher_id = ?", teacherID).
		Find(&quizzes).Error
	return quizzes, err
}
