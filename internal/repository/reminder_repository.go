package repository

import (
	"adaptive_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ReminderRepository struct {
	DB *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{DB: db}
}

func (r *ReminderRepository) Create(reminder *model.Reminder) error {
	return r.DB.Create(reminder).Error
}

func (r *ReminderRepository) ListBySectionAndType(sectionID uint, reminderType model.ReminderType) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := r.DB.Preload("Exercises").
		Where("section_id = ? AND reminder_type = ?", sectionID, reminderType).
		Order("id asc").Find(&reminders).Error
	return reminders, err
}

func (r *ReminderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// exercises attached to the reminder survive, detached from it
		if err := tx.Model(&model.Exercise{}).Where("reminder_id = ?", id).
			Update("reminder_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Reminder{}, id).Error
	})
}
