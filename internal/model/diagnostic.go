package model

import "encoding/json"

type QuestionShape string

const (
	SingleChoice   QuestionShape = "single_choice"
	MultipleChoice QuestionShape = "multiple_choice"
	FillBlank      QuestionShape = "fill_blank"
)

// Diagnostic is one graded item of a section's diagnostic quiz. The encoding
// of CorrectAnswer depends on Shape: the correct option text for
// single_choice, a JSON array of option texts for multiple_choice, and a
// comma-separated list of accepted literals for fill_blank.
// swagger:model Diagnostic
type Diagnostic struct {
	BaseModel
	SectionID     uint            `gorm:"index;not null" json:"sectionId"`
	Shape         QuestionShape   `gorm:"size:50;not null;default:'single_choice'" json:"shape"`
	Content       string          `gorm:"type:text;not null" json:"content"` // stem
	Options       json.RawMessage `gorm:"type:json" json:"options"`          // JSON: []string, empty for fill_blank
	CorrectAnswer string          `gorm:"type:text;not null" json:"-"`
	Explanation   string          `gorm:"type:text" json:"explanation,omitempty"`
	Points        int             `gorm:"default:10" json:"points"`
	Order         int             `gorm:"column:sequence_order;default:0" json:"order"`
}

func (Diagnostic) TableName() string {
	return "diagnostics"
}

// OptionsList decodes the stored JSON option array, preserving author order.
func (d *Diagnostic) OptionsList() ([]string, error) {
	if len(d.Options) == 0 {
		return nil, nil
	}
	var opts []string
	if err := json.Unmarshal(d.Options, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}
