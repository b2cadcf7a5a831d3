package service

import (
	"adaptive_edu_backend/internal/model"
	"adaptive_edu_backend/internal/repository"
	"adaptive_edu_backend/internal/util"
	"errors"
	"math"

	"gorm.io/gorm"
)

// Level is the learning path a student is routed onto after the diagnostic
// quiz. Its value doubles as the reminder_type and exercise level selector.
type Level int

const (
	LevelAdvanced Level = 1
	LevelBasic    Level = 2
)

// AdvancedThreshold is the section percentage at or above which a student is
// routed onto the advanced track. Fixed policy, not configurable.
const AdvancedThreshold = 80.0

// RouteLevel maps an aggregated section percentage to a learning path level.
func RouteLevel(percentage float64) Level {
	if percentage >= AdvancedThreshold {
		return LevelAdvanced
	}
	return LevelBasic
}

// SectionProgress is the derived standing of one student in one section.
// swagger:model SectionProgress
type SectionProgress struct {
	SectionID      uint    `json:"sectionId"`
	TotalQuestions int     `json:"totalQuestions"`
	AnsweredCount  int     `json:"answeredCount"`
	CorrectCount   int     `json:"correctCount"`
	Earned         int     `json:"totalScore"`
	Possible       int     `json:"maxScore"`
	Percentage     float64 `json:"percentage"`
	Level          Level   `json:"level"`
}

// ComputeSectionProgress folds ledger rows into a section standing. Possible
// points come from the section's question set, not from the attempt count.
// Results must be ordered oldest first; when a student attempted a question
// more than once only the latest row counts, so earned never exceeds
// possible no matter how many duplicate rows the ledger holds.
func ComputeSectionProgress(sectionID uint, questions []model.Diagnostic, results []model.Result) SectionProgress {
	possible := 0
	known := make(map[uint]struct{}, len(questions))
	for _, q := range questions {
		possible += q.Points
		known[q.ID] = struct{}{}
	}

	latest := make(map[uint]model.Result, len(questions))
	for _, res := range results {
		if res.DiagnosticID == nil {
			continue
		}
		if _, ok := known[*res.DiagnosticID]; !ok {
			continue
		}
		latest[*res.DiagnosticID] = res
	}

	earned := 0
	correct := 0
	for _, res := range latest {
		earned += res.Score
		if res.IsCorrect {
			correct++
		}
	}

	percentage := 0.0
	if possible > 0 {
		percentage = math.Round(100*float64(earned)/float64(possible)*100) / 100
	}

	return SectionProgress{
		SectionID:      sectionID,
		TotalQuestions: len(questions),
		AnsweredCount:  len(latest),
		CorrectCount:   correct,
		Earned:         earned,
		Possible:       possible,
		Percentage:     percentage,
		Level:          RouteLevel(percentage),
	}
}

type ProgressService struct {
	SectionRepo *repository.SectionRepository
	ResultRepo  *repository.ResultRepository
}

func NewProgressService(sectionRepo *repository.SectionRepository, resultRepo *repository.ResultRepository) *ProgressService {
	return &ProgressService{
		SectionRepo: sectionRepo,
		ResultRepo:  resultRepo,
	}
}

// Aggregate recomputes a student's standing across one section's diagnostics.
func (s *ProgressService) Aggregate(studentID, sectionID uint) (*SectionProgress, error) {
	if _, err := s.SectionRepo.FindByID(sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}

	questions, err := s.SectionRepo.ListDiagnostics(sectionID)
	if err != nil {
		return nil, err
	}

	results, err := s.ResultRepo.ListByStudentAndSection(studentID, sectionID)
	if err != nil {
		return nil, err
	}

	progress := ComputeSectionProgress(sectionID, questions, results)
	return &progress, nil
}
