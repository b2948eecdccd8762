package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRun() *Run {
	return &Run{
		ID: "run-1",
		Results: []Result{
			{Puzzle: "day07", Part: 1, Answer: "CABDFE", Expected: "CABDFE", Elapsed: 1500 * time.Microsecond},
			{Puzzle: "day07", Part: 2, Answer: "15", Elapsed: 2 * time.Millisecond},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml ", "cbor"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	f, err := ParseFormat("Yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRun(), Options{Format: FormatText}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	want := [][]string{
		{"PUZZLE", "PART", "ANSWER", "CHECK", "ELAPSED"},
		{"day07", "1", "CABDFE", "ok", "1.5ms"},
		{"day07", "2", "15", "-", "2ms"},
	}
	for i, line := range lines {
		assert.Equal(t, want[i], strings.Fields(line), "line %d", i)
	}

	// Columns are aligned: the answer column starts at the same offset.
	offset := strings.Index(lines[0], "ANSWER")
	assert.Equal(t, offset, strings.Index(lines[1], "CABDFE"))
	assert.Equal(t, offset, strings.Index(lines[2], "15"))
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes without color")
}

func TestRender_TextLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRun(), Options{Format: FormatText}))

	want := "PUZZLE  PART  ANSWER  CHECK  ELAPSED\n" +
		"day07   1     CABDFE  ok     1.5ms\n" +
		"day07   2     15      -      2ms\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text table mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &Run{}, Options{}))
	assert.Equal(t, []string{"PUZZLE", "PART", "ANSWER", "CHECK", "ELAPSED"}, strings.Fields(buf.String()))
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRun(), Options{Format: FormatJSON}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := map[string]any{
		"run_id": "run-1",
		"results": []any{
			map[string]any{"puzzle": "day07", "part": 1.0, "answer": "CABDFE", "verified": true, "elapsed_ms": 1.5},
			map[string]any{"puzzle": "day07", "part": 2.0, "answer": "15", "verified": false, "elapsed_ms": 2.0},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json document mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRun(), Options{Format: FormatYAML}))

	var got document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, newDocument(sampleRun()), got)
	assert.Contains(t, buf.String(), "run_id: run-1")
	assert.Contains(t, buf.String(), "answer: CABDFE")
}

func TestRender_CBOR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleRun(), Options{Format: FormatCBOR}))

	var got document
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, newDocument(sampleRun()), got)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sampleRun(), Options{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
