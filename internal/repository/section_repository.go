package repository

import (
	"adaptive_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) FindByID(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) FindByIDWithContent(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.
		Preload("Diagnostics", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order asc, id asc")
		}).
		Preload("Exercises").
		First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) ListDiagnostics(sectionID uint) ([]model.Diagnostic, error) {
	var qs []model.Diagnostic
	err := r.DB.Where("section_id = ?", sectionID).
		Order("sequence_order asc, id asc").Find(&qs).Error
	return qs, err
}
