package model

// Section is one teaching unit: a diagnostic question set, two reminder
// tracks and three exercise tiers.
// swagger:model Section
type Section struct {
	BaseModel
	Title       string       `gorm:"size:200;not null" json:"title"`
	Content     string       `gorm:"type:text" json:"content"`
	Order       int          `gorm:"column:sequence_order;default:0" json:"order"`
	LessonID    uint         `gorm:"index;not null" json:"lessonId"`
	Diagnostics []Diagnostic `gorm:"foreignKey:SectionID" json:"diagnostics,omitempty"`
	Reminders   []Reminder   `gorm:"foreignKey:SectionID" json:"reminders,omitempty"`
	Exercises   []Exercise   `gorm:"foreignKey:SectionID" json:"exercises,omitempty"`
}

func (Section) TableName() string {
	return "sections"
}
