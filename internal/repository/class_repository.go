package repository

import (
	"teacher_portal_backend/internal/model"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

// Create 插入后 GORM 会把自增ID写回 class.ID，
// 不要再用 "order by id desc limit 1" 反查，最后一行可能是别的教师刚建的
func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	err := r.DB.First(&class, id).Error
	return &class, err
}

func (r *ClassRepository) ListByTeacher(teacherID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Where("teacher_id = ?", teacherID).Find(&classes).Error
	return classes, err
}
