package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Answers decodes the json report of a run into puzzle -> part -> answer.
func Answers(t *testing.T, result *HarnessResult) map[string]map[int]string {
	t.Helper()
	require.NoError(t, result.Err, "run failed; logs:\n%s", result.LogOutput)

	var doc struct {
		Results []struct {
			Puzzle string `json:"puzzle"`
			Part   int    `json:"part"`
			Answer string `json:"answer"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc), "output is not a json report:\n%s", result.Output)

	answers := make(map[string]map[int]string)
	for _, r := range doc.Results {
		if answers[r.Puzzle] == nil {
			answers[r.Puzzle] = make(map[int]string)
		}
		answers[r.Puzzle][r.Part] = r.Answer
	}
	return answers
}

// AssertAnswer checks that the run produced want for the given part.
func AssertAnswer(t *testing.T, result *HarnessResult, puzzle string, part int, want string) {
	t.Helper()
	answers := Answers(t, result)
	got, ok := answers[puzzle][part]
	require.True(t, ok, "no answer for %s part %d in %v", puzzle, part, answers)
	require.Equal(t, want, got, "%s part %d", puzzle, part)
}
