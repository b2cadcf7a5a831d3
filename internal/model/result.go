package model

// Result is one graded submission in the append-only ledger. Exactly one of
// DiagnosticID and ExerciseID is set. Rows are never updated; repeated
// attempts append new rows and CreatedAt orders them.
// swagger:model Result
type Result struct {
	BaseModel
	StudentID    uint   `gorm:"index;not null" json:"studentId"`
	DiagnosticID *uint  `gorm:"index" json:"diagnosticId,omitempty"`
	ExerciseID   *uint  `gorm:"index" json:"exerciseId,omitempty"`
	IsCorrect    bool   `gorm:"not null" json:"isCorrect"`
	Answer       string `gorm:"type:text" json:"answer"` // raw submitted value
	Score        int    `gorm:"default:0" json:"score"`
}

func (Result) TableName() string {
	return "results"
}
