package repository

import (
	"adaptive_edu_backend/internal/model"

	"gorm.io/gorm"
)

type DiagnosticRepository struct {
	DB *gorm.DB
}

func NewDiagnosticRepository(db *gorm.DB) *DiagnosticRepository {
	return &DiagnosticRepository{DB: db}
}

func (r *DiagnosticRepository) Create(q *model.Diagnostic) error {
	return r.DB.Create(q).Error
}

func (r *DiagnosticRepository) FindByID(id uint) (*model.Diagnostic, error) {
	var q model.Diagnostic
	err := r.DB.First(&q, id).Error
	return &q, err
}

// Delete removes a question together with its ledger rows. Results are never
// deleted on their own, only by this cascade.
func (r *DiagnosticRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("diagnostic_id = ?", id).Delete(&model.Result{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Diagnostic{}, id).Error
	})
}
