package service

import (
	"adaptive_edu_backend/internal/model"
	"adaptive_edu_backend/internal/util"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleChoiceQuestion(t *testing.T) *model.Diagnostic {
	t.Helper()
	return &model.Diagnostic{
		Shape:         model.SingleChoice,
		Content:       "What is 1/5 + 2/5?",
		Options:       []byte(`["2/5","3/5","3/10","1/5"]`),
		CorrectAnswer: "3/5",
		Points:        10,
	}
}

func multipleChoiceQuestion(t *testing.T) *model.Diagnostic {
	t.Helper()
	return &model.Diagnostic{
		Shape:         model.MultipleChoice,
		Content:       "Pick the correct options",
		Options:       []byte(`["A","B","C","D"]`),
		CorrectAnswer: `["B","D"]`,
		Points:        10,
	}
}

func fillBlankQuestion(t *testing.T) *model.Diagnostic {
	t.Helper()
	return &model.Diagnostic{
		Shape:         model.FillBlank,
		Content:       "3 + 5 = ?",
		CorrectAnswer: "8, eight",
		Points:        10,
	}
}

func TestNormalizeAnswerSingleChoice(t *testing.T) {
	ans, err := NormalizeAnswer(model.SingleChoice, json.RawMessage(`"  3/5  "`))
	require.NoError(t, err)
	assert.Equal(t, "3/5", ans.Text)

	_, err = NormalizeAnswer(model.SingleChoice, json.RawMessage(`["3/5"]`))
	assert.ErrorIs(t, err, util.ErrInvalidAnswerShape)
}

func TestNormalizeAnswerMultipleChoice(t *testing.T) {
	ans, err := NormalizeAnswer(model.MultipleChoice, json.RawMessage(`["B","D","B"]`))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "D"}, ans.Selected)

	// a bare string is coerced into a one-element selection
	ans, err = NormalizeAnswer(model.MultipleChoice, json.RawMessage(`"B"`))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ans.Selected)

	_, err = NormalizeAnswer(model.MultipleChoice, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, util.ErrInvalidAnswerShape)

	_, err = NormalizeAnswer(model.MultipleChoice, json.RawMessage(`42`))
	assert.ErrorIs(t, err, util.ErrInvalidAnswerShape)
}

func TestNormalizeAnswerFillBlank(t *testing.T) {
	ans, err := NormalizeAnswer(model.FillBlank, json.RawMessage(`" eight "`))
	require.NoError(t, err)
	assert.Equal(t, "eight", ans.Text)
}

func TestGradeSingleChoice(t *testing.T) {
	q := singleChoiceQuestion(t)

	correct, score, err := GradeDiagnostic(q, NormalizedAnswer{Text: "3/5"})
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 10, score)

	correct, score, err = GradeDiagnostic(q, NormalizedAnswer{Text: "2/5"})
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Zero(t, score)

	// case-sensitive comparison
	q.Options = []byte(`["Paris","paris"]`)
	q.CorrectAnswer = "Paris"
	correct, _, err = GradeDiagnostic(q, NormalizedAnswer{Text: "paris"})
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestGradeMultipleChoiceExactSet(t *testing.T) {
	q := multipleChoiceQuestion(t)

	cases := []struct {
		name     string
		selected []string
		want     bool
	}{
		{"exact match", []string{"B", "D"}, true},
		{"order irrelevant", []string{"D", "B"}, true},
		{"subset gets no partial credit", []string{"B"}, false},
		{"superset is wrong", []string{"B", "D", "A"}, false},
		{"empty selection", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			correct, score, err := GradeDiagnostic(q, NormalizedAnswer{Selected: tc.selected})
			require.NoError(t, err)
			assert.Equal(t, tc.want, correct)
			if tc.want {
				assert.Equal(t, q.Points, score)
			} else {
				assert.Zero(t, score)
			}
		})
	}
}

func TestGradeFillBlankAcceptedLiterals(t *testing.T) {
	q := fillBlankQuestion(t)

	for _, accepted := range []string{"8", "eight"} {
		correct, score, err := GradeDiagnostic(q, NormalizedAnswer{Text: accepted})
		require.NoError(t, err)
		assert.True(t, correct, "expected %q to be accepted", accepted)
		assert.Equal(t, 10, score)
	}

	correct, score, err := GradeDiagnostic(q, NormalizedAnswer{Text: "9"})
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Zero(t, score)
}

func TestGradeScoreIsAllOrNothing(t *testing.T) {
	q := multipleChoiceQuestion(t)
	q.Points = 25

	for _, selected := range [][]string{{"B", "D"}, {"B"}, {"A", "C"}, nil} {
		_, score, err := GradeDiagnostic(q, NormalizedAnswer{Selected: selected})
		require.NoError(t, err)
		assert.Contains(t, []int{0, q.Points}, score)
	}
}

func TestGradeMalformedCorrectAnswer(t *testing.T) {
	cases := []struct {
		name string
		q    *model.Diagnostic
	}{
		{
			"multiple choice answer not a JSON array",
			&model.Diagnostic{Shape: model.MultipleChoice, Options: []byte(`["A","B"]`), CorrectAnswer: "B", Points: 10},
		},
		{
			"multiple choice empty correct set",
			&model.Diagnostic{Shape: model.MultipleChoice, Options: []byte(`["A","B"]`), CorrectAnswer: `[]`, Points: 10},
		},
		{
			"multiple choice answer outside declared options",
			&model.Diagnostic{Shape: model.MultipleChoice, Options: []byte(`["A","B"]`), CorrectAnswer: `["Z"]`, Points: 10},
		},
		{
			"single choice answer outside declared options",
			&model.Diagnostic{Shape: model.SingleChoice, Options: []byte(`["A","B"]`), CorrectAnswer: "Z", Points: 10},
		},
		{
			"single choice broken options encoding",
			&model.Diagnostic{Shape: model.SingleChoice, Options: []byte(`{not json`), CorrectAnswer: "A", Points: 10},
		},
		{
			"fill blank with no accepted literals",
			&model.Diagnostic{Shape: model.FillBlank, CorrectAnswer: " , ,", Points: 10},
		},
		{
			"unknown shape",
			&model.Diagnostic{Shape: "essay", CorrectAnswer: "x", Points: 10},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := GradeDiagnostic(tc.q, NormalizedAnswer{Text: "A", Selected: []string{"A"}})
			assert.ErrorIs(t, err, util.ErrMalformedCorrectAnswer)
		})
	}
}

func TestGradeExercise(t *testing.T) {
	ex := &model.Exercise{
		Content:       "Compute 2/7 + 3/7.",
		CorrectAnswer: "5/7",
		Points:        10,
	}

	correct, score := GradeExercise(ex, "  5/7 ")
	assert.True(t, correct)
	assert.Equal(t, 10, score)

	correct, score = GradeExercise(ex, "4/7")
	assert.False(t, correct)
	assert.Zero(t, score)
}
