package service

import (
	"adaptive_edu_backend/internal/model"
	"adaptive_edu_backend/internal/repository"
	"adaptive_edu_backend/internal/util"
	"adaptive_edu_backend/pkg/logger"
	"adaptive_edu_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GradingService struct {
	DiagnosticRepo *repository.DiagnosticRepository
	ExerciseRepo   *repository.ExerciseRepository
	ResultRepo     *repository.ResultRepository
	Progress       *ProgressService
	DB             *gorm.DB
}

func NewGradingService(
	diagnosticRepo *repository.DiagnosticRepository,
	exerciseRepo *repository.ExerciseRepository,
	resultRepo *repository.ResultRepository,
	progress *ProgressService,
	db *gorm.DB,
) *GradingService {
	return &GradingService{
		DiagnosticRepo: diagnosticRepo,
		ExerciseRepo:   exerciseRepo,
		ResultRepo:     resultRepo,
		Progress:       progress,
		DB:             db,
	}
}

type DiagnosticGradeResponse struct {
	IsCorrect      bool                `json:"isCorrect"`
	Score          int                 `json:"score"`
	Percentage     float64             `json:"percentage"`
	Level          Level               `json:"level"`
	QuestionShape  model.QuestionShape `json:"questionShape"`
	Explanation    string              `json:"explanation"`
	CorrectAnswers []string            `json:"correctAnswers"`
	TotalQuestions int                 `json:"totalQuestions"`
	TotalScore     int                 `json:"totalScore"`
	MaxScore       int                 `json:"maxScore"`
}

// SubmitDiagnostic grades one diagnostic answer, appends the ledger row and
// returns the refreshed section standing with the routed level. Validation
// happens before the write; the write itself is one transaction.
func (s *GradingService) SubmitDiagnostic(studentID, diagnosticID uint, rawAnswer json.RawMessage) (*DiagnosticGradeResponse, error) {
	q, err := s.DiagnosticRepo.FindByID(diagnosticID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDiagnosticNotFound
		}
		return nil, err
	}

	normalized, err := NormalizeAnswer(q.Shape, rawAnswer)
	if err != nil {
		return nil, err
	}

	isCorrect, score, err := GradeDiagnostic(q, normalized)
	if err != nil {
		return nil, err
	}

	result := &model.Result{
		StudentID:    studentID,
		DiagnosticID: &q.ID,
		IsCorrect:    isCorrect,
		Answer:       string(rawAnswer),
		Score:        score,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.ResultRepo.AppendTx(tx, result)
	}); err != nil {
		return nil, err
	}

	monitoring.GradedSubmissions.WithLabelValues("diagnostic", strconv.FormatBool(isCorrect)).Inc()

	progress, err := s.Progress.Aggregate(studentID, q.SectionID)
	if err != nil {
		return nil, err
	}

	accepted, err := DecodeCorrectAnswers(q)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("diagnostic graded",
		zap.Uint("studentId", studentID),
		zap.Uint("diagnosticId", diagnosticID),
		zap.Bool("correct", isCorrect),
		zap.Float64("percentage", progress.Percentage),
		zap.Int("level", int(progress.Level)),
	)

	return &DiagnosticGradeResponse{
		IsCorrect:      isCorrect,
		Score:          score,
		Percentage:     progress.Percentage,
		Level:          progress.Level,
		QuestionShape:  q.Shape,
		Explanation:    q.Explanation,
		CorrectAnswers: accepted,
		TotalQuestions: progress.TotalQuestions,
		TotalScore:     progress.Earned,
		MaxScore:       progress.Possible,
	}, nil
}

type ExerciseGradeResponse struct {
	IsCorrect   bool   `json:"isCorrect"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// SubmitExercise grades one exercise answer and appends the ledger row.
func (s *GradingService) SubmitExercise(studentID, exerciseID uint, answer string) (*ExerciseGradeResponse, error) {
	ex, err := s.ExerciseRepo.FindByID(exerciseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExerciseNotFound
		}
		return nil, err
	}

	isCorrect, score := GradeExercise(ex, answer)

	result := &model.Result{
		StudentID:  studentID,
		ExerciseID: &ex.ID,
		IsCorrect:  isCorrect,
		Answer:     answer,
		Score:      score,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.ResultRepo.AppendTx(tx, result)
	}); err != nil {
		return nil, err
	}

	monitoring.GradedSubmissions.WithLabelValues("exercise", strconv.FormatBool(isCorrect)).Inc()

	logger.Log.Info("exercise graded",
		zap.Uint("studentId", studentID),
		zap.Uint("exerciseId", exerciseID),
		zap.Bool("correct", isCorrect),
	)

	return &ExerciseGradeResponse{
		IsCorrect:   isCorrect,
		Score:       score,
		Explanation: ex.Explanation,
	}, nil
}
