package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsList(t *testing.T) {
	d := Diagnostic{Options: json.RawMessage(`["2/5","3/5","3/10","1/5"]`)}

	opts, err := d.OptionsList()
	require.NoError(t, err)
	assert.Equal(t, []string{"2/5", "3/5", "3/10", "1/5"}, opts)
}

func TestOptionsListEmpty(t *testing.T) {
	var d Diagnostic

	opts, err := d.OptionsList()
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestOptionsListBadEncoding(t *testing.T) {
	d := Diagnostic{Options: json.RawMessage(`{"a":1}`)}

	_, err := d.OptionsList()
	assert.Error(t, err)
}

func TestDiagnosticJSONHidesCorrectAnswer(t *testing.T) {
	d := Diagnostic{
		Shape:         SingleChoice,
		Content:       "What is 1/5 + 2/5?",
		Options:       json.RawMessage(`["2/5","3/5"]`),
		CorrectAnswer: "3/5",
		Points:        10,
	}

	out, err := json.Marshal(d)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.NotContains(t, fields, "correctAnswer")
	assert.NotContains(t, fields, "CorrectAnswer")
	assert.Equal(t, "single_choice", fields["shape"])
}
