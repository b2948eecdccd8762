package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stepgrid/internal/hcl"
	"github.com/vk/stepgrid/internal/report"
)

func writeRunFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const day07Run = `
puzzle "day07" {
  input_text = <<EOT
Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
EOT
  expect = { part1 = "CABDFE", part2 = "15" }
  options {
    workers       = 2
    base_duration = 0
  }
}
`

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{RunPath: "run.hcl"})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, report.FormatText, cfg.Output)

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing run path", Config{}, "RunPath is a required"},
		{"negative part", Config{RunPath: "x", Part: -1}, "part must not be negative"},
		{"negative workers", Config{RunPath: "x", Workers: -2}, "workers must not be negative"},
		{"unknown output", Config{RunPath: "x", Output: "xml"}, "unknown output format"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "warn", "error", ""} {
		_, err := ParseLogLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseLogLevel("verbose")
	assert.ErrorContains(t, err, "invalid log-level")
}

func TestNewLogger(t *testing.T) {
	logs := &SafeBuffer{}
	logger := newLogger("warn", "json", logs)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestApp_Run(t *testing.T) {
	cfg, err := NewConfig(Config{RunPath: writeRunFile(t, day07Run), LogLevel: "debug", Output: report.FormatJSON})
	require.NoError(t, err)

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	app, err := NewApp(out, logs, cfg, hcl.NewLoader())
	require.NoError(t, err)
	assert.Equal(t, 8, app.Registry().Len(), "all built-in puzzles are registered")

	require.NoError(t, app.Run(context.Background()))

	var doc struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Puzzle   string `json:"puzzle"`
			Part     int    `json:"part"`
			Answer   string `json:"answer"`
			Verified bool   `json:"verified"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))
	assert.Equal(t, app.RunID(), doc.RunID)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "CABDFE", doc.Results[0].Answer)
	assert.Equal(t, "15", doc.Results[1].Answer)
	assert.True(t, doc.Results[1].Verified)

	assert.Contains(t, logs.String(), "run_id="+app.RunID())
	assert.Contains(t, logs.String(), "Simulation finished.")
}

func TestApp_RunFilters(t *testing.T) {
	cfg, err := NewConfig(Config{RunPath: writeRunFile(t, day07Run), Puzzle: "day07", Part: 2})
	require.NoError(t, err)

	out := &SafeBuffer{}
	app, err := NewApp(out, &SafeBuffer{}, cfg, hcl.NewLoader())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "header and one result")
	assert.Equal(t, []string{"day07", "2", "15", "ok"}, strings.Fields(lines[1])[:4])
}

func TestApp_RunFailures(t *testing.T) {
	t.Run("load error", func(t *testing.T) {
		cfg, err := NewConfig(Config{RunPath: filepath.Join(t.TempDir(), "missing.hcl")})
		require.NoError(t, err)
		_, err = NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, hcl.NewLoader())
		assert.ErrorContains(t, err, "failed to load run file")
	})

	t.Run("wrong expectation", func(t *testing.T) {
		run := strings.Replace(day07Run, `part2 = "15"`, `part2 = "16"`, 1)
		cfg, err := NewConfig(Config{RunPath: writeRunFile(t, run)})
		require.NoError(t, err)

		out := &SafeBuffer{}
		app, err := NewApp(out, &SafeBuffer{}, cfg, hcl.NewLoader())
		require.NoError(t, err)

		err = app.Run(context.Background())
		assert.ErrorContains(t, err, `day07 part 2: unexpected answer: got "15", want "16"`)
		assert.Empty(t, out.String(), "no partial report")
	})
}
