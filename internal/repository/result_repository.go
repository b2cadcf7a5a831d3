package repository

import (
	"adaptive_edu_backend/internal/model"

	"gorm.io/gorm"
)

// ResultRepository is the append-only ledger of graded submissions.
type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) Append(result *model.Result) error {
	return r.DB.Create(result).Error
}

// AppendTx appends inside an existing transaction so a grading unit commits
// or rolls back as a whole.
func (r *ResultRepository) AppendTx(tx *gorm.DB, result *model.Result) error {
	return tx.Create(result).Error
}

// ListByStudentAndSection returns the student's diagnostic rows for one
// section, oldest first. Ties on the timestamp keep insertion order.
func (r *ResultRepository) ListByStudentAndSection(studentID, sectionID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.
		Joins("JOIN diagnostics ON diagnostics.id = results.diagnostic_id").
		Where("results.student_id = ? AND diagnostics.section_id = ?", studentID, sectionID).
		Where("diagnostics.deleted_at IS NULL").
		Order("results.created_at asc, results.id asc").
		Find(&results).Error
	return results, err
}

func (r *ResultRepository) ListByStudentAndExercise(studentID, exerciseID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.
		Where("student_id = ? AND exercise_id = ?", studentID, exerciseID).
		Order("created_at asc, id asc").
		Find(&results).Error
	return results, err
}

// CountBySection reports how many distinct students have attempted a
// section's diagnostics, for teacher reporting.
func (r *ResultRepository) CountBySection(sectionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Result{}).
		Joins("JOIN diagnostics ON diagnostics.id = results.diagnostic_id").
		Where("diagnostics.section_id = ?", sectionID).
		Distinct("results.student_id").
		Count(&count).Error
	return count, err
}
