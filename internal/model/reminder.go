package model

type ReminderType int

const (
	ReminderAdvanced ReminderType = 1
	ReminderBasic    ReminderType = 2
)

// Reminder is a remediation review shown to a student after routing:
// type 1 for the advanced track, type 2 for the basic track.
// swagger:model Reminder
type Reminder struct {
	BaseModel
	SectionID    uint         `gorm:"index;not null" json:"sectionId"`
	ReminderType ReminderType `gorm:"not null" json:"reminderType"`
	Title        string       `gorm:"size:200" json:"title"`
	Content      string       `gorm:"type:text;not null" json:"content"`
	Exercises    []Exercise   `gorm:"foreignKey:ReminderID" json:"exercises,omitempty"`
}

func (Reminder) TableName() string {
	return "reminders"
}
