package model

// Lesson groups an ordered set of sections authored by one teacher.
// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	LevelID     int       `gorm:"default:1" json:"levelId"` // 1-3, coarse difficulty of the whole lesson
	TeacherID   uint      `gorm:"index;not null" json:"teacherId"`
	Sections    []Section `gorm:"foreignKey:LessonID" json:"sections,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
