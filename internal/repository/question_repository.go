package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) ListByQuiz(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) CountByQuiz(quizID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

// CreateBatch 批量写入题目并记录导入审计，同一事务内要么全部落库要么全不落
func (r *QuestionRepository) CreateBatch(questions []model.Question, imp *model.QuizImport) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		if imp != nil {
			if err := tx.Create(imp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
