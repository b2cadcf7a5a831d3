package repository

import (
	"adaptive_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

func (r *ExerciseRepository) Create(ex *model.Exercise) error {
	return r.DB.Create(ex).Error
}

func (r *ExerciseRepository) FindByID(id uint) (*model.Exercise, error) {
	var ex model.Exercise
	err := r.DB.First(&ex, id).Error
	return &ex, err
}

func (r *ExerciseRepository) ListBySectionAndLevel(sectionID uint, level model.ExerciseLevel) ([]model.Exercise, error) {
	var exs []model.Exercise
	err := r.DB.Where("section_id = ? AND level = ?", sectionID, level).
		Order("id asc").Find(&exs).Error
	return exs, err
}

func (r *ExerciseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercise_id = ?", id).Delete(&model.Result{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exercise{}, id).Error
	})
}
