package service

import (
	"adaptive_edu_backend/internal/model"
	"adaptive_edu_backend/internal/util"
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizedAnswer is the canonical form of a submitted answer. Text carries
// single_choice and fill_blank answers, Selected carries the de-duplicated
// multiple_choice selection.
type NormalizedAnswer struct {
	Text     string
	Selected []string
}

// NormalizeAnswer canonicalizes a raw JSON answer value against the declared
// question shape. A bare string submitted to a multiple_choice question is
// coerced into a one-element selection; anything else that does not fit the
// shape is rejected with util.ErrInvalidAnswerShape.
func NormalizeAnswer(shape model.QuestionShape, raw json.RawMessage) (NormalizedAnswer, error) {
	switch shape {
	case model.SingleChoice, model.FillBlank:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return NormalizedAnswer{}, fmt.Errorf("%w: expected a string for %s", util.ErrInvalidAnswerShape, shape)
		}
		return NormalizedAnswer{Text: strings.TrimSpace(s)}, nil

	case model.MultipleChoice:
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return NormalizedAnswer{}, fmt.Errorf("%w: expected a string array for %s", util.ErrInvalidAnswerShape, shape)
			}
			list = []string{s}
		}
		seen := make(map[string]struct{}, len(list))
		selected := make([]string, 0, len(list))
		for _, s := range list {
			s = strings.TrimSpace(s)
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			selected = append(selected, s)
		}
		return NormalizedAnswer{Selected: selected}, nil

	default:
		return NormalizedAnswer{}, fmt.Errorf("%w: unknown question shape %q", util.ErrMalformedCorrectAnswer, shape)
	}
}

// DecodeCorrectAnswers decodes the stored correct answer of a question into
// the set of accepted literals, validating it against the declared options.
// A failure here is an authoring-time data bug and surfaces as
// util.ErrMalformedCorrectAnswer, never as a wrong answer.
func DecodeCorrectAnswers(q *model.Diagnostic) ([]string, error) {
	switch q.Shape {
	case model.SingleChoice:
		opts, err := q.OptionsList()
		if err != nil {
			return nil, fmt.Errorf("%w: bad options encoding: %v", util.ErrMalformedCorrectAnswer, err)
		}
		if !containsString(opts, q.CorrectAnswer) {
			return nil, fmt.Errorf("%w: correct answer %q is not a declared option", util.ErrMalformedCorrectAnswer, q.CorrectAnswer)
		}
		return []string{q.CorrectAnswer}, nil

	case model.MultipleChoice:
		opts, err := q.OptionsList()
		if err != nil {
			return nil, fmt.Errorf("%w: bad options encoding: %v", util.ErrMalformedCorrectAnswer, err)
		}
		var set []string
		if err := json.Unmarshal([]byte(q.CorrectAnswer), &set); err != nil {
			return nil, fmt.Errorf("%w: correct answer is not a JSON string array", util.ErrMalformedCorrectAnswer)
		}
		if len(set) == 0 {
			return nil, fmt.Errorf("%w: empty correct answer set", util.ErrMalformedCorrectAnswer)
		}
		for _, s := range set {
			if !containsString(opts, s) {
				return nil, fmt.Errorf("%w: correct answer %q is not a declared option", util.ErrMalformedCorrectAnswer, s)
			}
		}
		return set, nil

	case model.FillBlank:
		var accepted []string
		for _, part := range strings.Split(q.CorrectAnswer, ",") {
			if part = strings.TrimSpace(part); part != "" {
				accepted = append(accepted, part)
			}
		}
		if len(accepted) == 0 {
			return nil, fmt.Errorf("%w: no accepted literals", util.ErrMalformedCorrectAnswer)
		}
		return accepted, nil

	default:
		return nil, fmt.Errorf("%w: unknown question shape %q", util.ErrMalformedCorrectAnswer, q.Shape)
	}
}

// GradeDiagnostic compares a normalized answer against the stored correct
// answer. Points are all-or-nothing: multiple_choice requires exact set
// equality with no partial credit, fill_blank accepts any one of the
// comma-separated literals, single_choice is a case-sensitive match.
func GradeDiagnostic(q *model.Diagnostic, ans NormalizedAnswer) (bool, int, error) {
	accepted, err := DecodeCorrectAnswers(q)
	if err != nil {
		return false, 0, err
	}

	var correct bool
	switch q.Shape {
	case model.SingleChoice:
		correct = ans.Text == accepted[0]
	case model.MultipleChoice:
		correct = equalSets(ans.Selected, accepted)
	case model.FillBlank:
		correct = containsString(accepted, ans.Text)
	}

	if !correct {
		return false, 0, nil
	}
	return true, q.Points, nil
}

// GradeExercise compares the trimmed submission against the single stored
// literal answer.
func GradeExercise(ex *model.Exercise, submitted string) (bool, int) {
	if strings.TrimSpace(submitted) != strings.TrimSpace(ex.CorrectAnswer) {
		return false, 0
	}
	return true, ex.Points
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func equalSets(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	matched := make(map[string]struct{}, len(b))
	for _, s := range b {
		if _, ok := set[s]; !ok {
			return false
		}
		matched[s] = struct{}{}
	}
	return len(matched) == len(set)
}
