package service

import (
	"adaptive_edu_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteLevel(t *testing.T) {
	cases := []struct {
		percentage float64
		want       Level
	}{
		{0, LevelBasic},
		{50, LevelBasic},
		{79.99, LevelBasic},
		{80, LevelAdvanced},
		{80.01, LevelAdvanced},
		{100, LevelAdvanced},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RouteLevel(tc.percentage), "percentage %v", tc.percentage)
	}
}

func diagnosticWithID(id uint, points int) model.Diagnostic {
	d := model.Diagnostic{Shape: model.SingleChoice, Points: points}
	d.ID = id
	return d
}

func resultFor(diagnosticID uint, correct bool, score int) model.Result {
	id := diagnosticID
	return model.Result{DiagnosticID: &id, IsCorrect: correct, Score: score}
}

func TestComputeSectionProgress(t *testing.T) {
	questions := []model.Diagnostic{
		diagnosticWithID(1, 10),
		diagnosticWithID(2, 10),
		diagnosticWithID(3, 10),
	}

	t.Run("no attempts", func(t *testing.T) {
		p := ComputeSectionProgress(7, questions, nil)
		assert.Equal(t, uint(7), p.SectionID)
		assert.Equal(t, 3, p.TotalQuestions)
		assert.Zero(t, p.AnsweredCount)
		assert.Zero(t, p.Earned)
		assert.Equal(t, 30, p.Possible)
		assert.Zero(t, p.Percentage)
		assert.Equal(t, LevelBasic, p.Level)
	})

	t.Run("all correct routes advanced", func(t *testing.T) {
		p := ComputeSectionProgress(7, questions, []model.Result{
			resultFor(1, true, 10),
			resultFor(2, true, 10),
			resultFor(3, true, 10),
		})
		assert.Equal(t, 30, p.Earned)
		assert.Equal(t, 3, p.CorrectCount)
		assert.Equal(t, float64(100), p.Percentage)
		assert.Equal(t, LevelAdvanced, p.Level)
	})

	t.Run("two of three routes basic", func(t *testing.T) {
		p := ComputeSectionProgress(7, questions, []model.Result{
			resultFor(1, true, 10),
			resultFor(2, true, 10),
			resultFor(3, false, 0),
		})
		assert.Equal(t, 20, p.Earned)
		assert.Equal(t, 3, p.AnsweredCount)
		assert.InDelta(t, 66.67, p.Percentage, 0.001)
		assert.Equal(t, LevelBasic, p.Level)
	})

	t.Run("latest attempt wins", func(t *testing.T) {
		// a wrong first try followed by a correct retry counts once, at the
		// retry's score
		p := ComputeSectionProgress(7, questions, []model.Result{
			resultFor(1, false, 0),
			resultFor(1, true, 10),
			resultFor(1, true, 10),
		})
		assert.Equal(t, 1, p.AnsweredCount)
		assert.Equal(t, 10, p.Earned)
		assert.LessOrEqual(t, p.Earned, p.Possible)
	})

	t.Run("retry downgrade counts the latest row", func(t *testing.T) {
		p := ComputeSectionProgress(7, questions, []model.Result{
			resultFor(2, true, 10),
			resultFor(2, false, 0),
		})
		assert.Equal(t, 1, p.AnsweredCount)
		assert.Zero(t, p.Earned)
		assert.Zero(t, p.CorrectCount)
	})

	t.Run("rows for unknown or deleted questions are skipped", func(t *testing.T) {
		p := ComputeSectionProgress(7, questions, []model.Result{
			resultFor(1, true, 10),
			resultFor(99, true, 10),
			{DiagnosticID: nil, IsCorrect: true, Score: 10},
		})
		assert.Equal(t, 1, p.AnsweredCount)
		assert.Equal(t, 10, p.Earned)
	})

	t.Run("empty question set", func(t *testing.T) {
		p := ComputeSectionProgress(7, nil, []model.Result{resultFor(1, true, 10)})
		assert.Zero(t, p.Possible)
		assert.Zero(t, p.Earned)
		assert.Zero(t, p.Percentage)
		assert.Equal(t, LevelBasic, p.Level)
	})

	t.Run("percentage rounds to two decimals", func(t *testing.T) {
		qs := []model.Diagnostic{
			diagnosticWithID(1, 7),
			diagnosticWithID(2, 7),
			diagnosticWithID(3, 7),
		}
		p := ComputeSectionProgress(7, qs, []model.Result{resultFor(1, true, 7)})
		assert.InDelta(t, 33.33, p.Percentage, 0.0001)
	})
}
