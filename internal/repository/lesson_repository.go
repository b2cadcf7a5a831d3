package repository

import (
	"adaptive_edu_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order asc")
	}).First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) List(page, limit int) ([]model.Lesson, int64, error) {
	var lessons []model.Lesson
	var total int64
	query := r.DB.Model(&model.Lesson{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&lessons).Error
	return lessons, total, err
}
