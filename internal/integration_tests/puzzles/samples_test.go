package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/stepgrid/internal/app"
	"github.com/vk/stepgrid/internal/testutil"
)

const samplesRun = `
puzzle "day01" {
  input  = "inputs/day01.txt"
  expect = { part1 = 3, part2 = 2 }
}

puzzle "day03" {
  input_text = <<EOT
#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
EOT
  expect = { part1 = 4, part2 = 3 }
}

puzzle "day05" {
  input_text = "dabAcCaCBAcCcaDA"
  expect     = { part1 = 10, part2 = 4 }
}

puzzle "day06" {
  input  = "inputs/day06.txt"
  expect = { part1 = 17, part2 = 16 }
  options {
    max_total_distance = 32
  }
}

puzzle "day07" {
  input  = "inputs/day07.txt"
  expect = { part1 = "CABDFE", part2 = 15 }
  options {
    workers       = 2
    base_duration = 0
  }
}

puzzle "day08" {
  input_text = "2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2"
  expect     = { part1 = 138, part2 = 66 }
}
`

const day04Input = `[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
`

func sampleFiles() map[string]string {
	return map[string]string{
		"run/samples.hcl": samplesRun,
		"run/day02.hcl": `
puzzle "day02" {
  input = "../inputs/day02.txt"
  parts = [1]
}
`,
		"run/day04.hcl": `
puzzle "day04" {
  input  = "../inputs/day04.txt"
  expect = { part1 = 240, part2 = 4455 }
}
`,
		"run/inputs/day01.txt": "+1\n-2\n+3\n+1\n",
		"run/inputs/day06.txt": "1, 1\n1, 6\n8, 3\n3, 4\n5, 5\n8, 9\n",
		"run/inputs/day07.txt": `Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
`,
		"inputs/day02.txt": "abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab\n",
		"inputs/day04.txt": day04Input,
	}
}

type reportedResult struct {
	Puzzle   string `json:"puzzle"`
	Part     int    `json:"part"`
	Answer   string `json:"answer"`
	Verified bool   `json:"verified"`
}

func decodeResults(t *testing.T, result *testutil.HarnessResult) []reportedResult {
	t.Helper()
	require.NoError(t, result.Err, "run failed; logs:\n%s", result.LogOutput)
	var doc struct {
		Results []reportedResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc))
	return doc.Results
}

// Test for: every sample answer is produced through a run directory
func TestPuzzles_SampleInputs(t *testing.T) {
	// --- Arrange ---
	files := sampleFiles()
	cfg := app.Config{RunPath: "run", Workers: 4}

	// --- Act ---
	result := testutil.RunApp(t, files, cfg)

	// --- Assert ---
	want := []reportedResult{
		{"day01", 1, "3", true},
		{"day01", 2, "2", true},
		{"day02", 1, "12", false},
		{"day03", 1, "4", true},
		{"day03", 2, "3", true},
		{"day04", 1, "240", true},
		{"day04", 2, "4455", true},
		{"day05", 1, "10", true},
		{"day05", 2, "4", true},
		{"day06", 1, "17", true},
		{"day06", 2, "16", true},
		{"day07", 1, "CABDFE", true},
		{"day07", 2, "15", true},
		{"day08", 1, "138", true},
		{"day08", 2, "66", true},
	}
	if diff := cmp.Diff(want, decodeResults(t, result)); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

// Test for: result order does not depend on the worker count
func TestPuzzles_ResultOrderIsStable(t *testing.T) {
	// --- Arrange ---
	files := sampleFiles()

	// --- Act ---
	serial := testutil.RunApp(t, files, app.Config{RunPath: "run", Workers: 1})
	parallel := testutil.RunApp(t, files, app.Config{RunPath: "run", Workers: 8})

	// --- Assert ---
	if diff := cmp.Diff(decodeResults(t, serial), decodeResults(t, parallel)); diff != "" {
		t.Errorf("results differ between serial and parallel runs (-serial +parallel):\n%s", diff)
	}
}

// Test for: the day07 defaults reproduce the full-size schedule
func TestPuzzles_Day07DefaultOptions(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
puzzle "day07" {
  input = "day07.txt"
  parts = [2]
}
`,
		"day07.txt": sampleFiles()["run/inputs/day07.txt"],
	}

	// --- Act ---
	result := testutil.RunApp(t, files, app.Config{})

	// --- Assert ---
	testutil.AssertAnswer(t, result, "day07", 2, "253")
}
