package model

type ExerciseLevel int

const (
	ExerciseMain     ExerciseLevel = 0
	ExerciseAdvanced ExerciseLevel = 1
	ExerciseRemedial ExerciseLevel = 2
)

// Exercise is a practice item with a single literal correct answer. Level 0
// is shown to everyone, levels 1 and 2 follow the routed track.
// swagger:model Exercise
type Exercise struct {
	BaseModel
	SectionID     uint          `gorm:"index" json:"sectionId"`
	ReminderID    *uint         `gorm:"index" json:"reminderId,omitempty"`
	Level         ExerciseLevel `gorm:"default:0" json:"level"`
	Title         string        `gorm:"size:200" json:"title"`
	Content       string        `gorm:"type:text;not null" json:"content"`
	CorrectAnswer string        `gorm:"size:500;not null" json:"-"`
	Explanation   string        `gorm:"type:text" json:"explanation,omitempty"`
	Points        int           `gorm:"default:10" json:"points"`
}

func (Exercise) TableName() string {
	return "exercises"
}
