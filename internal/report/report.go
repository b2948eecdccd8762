package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fxamacker/cbor/v2"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format that has no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of text, json, yaml, cbor", ErrUnknownFormat, s)
}

// Result is the answer to one part of one puzzle.
type Result struct {
	Puzzle string
	Part   int
	Answer string
	// Expected is the answer declared in the run file, empty when none was.
	Expected string
	Elapsed  time.Duration
}

// Verified reports whether the answer was checked against an expectation.
func (r Result) Verified() bool {
	return r.Expected != ""
}

// Run is everything a renderer needs.
type Run struct {
	ID      string
	Results []Result
}

// Options configures Render.
type Options struct {
	Format Format
	// Color enables terminal styling of text output when w supports it.
	Color bool
}

// document is the machine-readable shape of a Run. The json tags are also
// honored by the cbor encoder.
type document struct {
	RunID   string           `json:"run_id" yaml:"run_id"`
	Results []resultDocument `json:"results" yaml:"results"`
}

type resultDocument struct {
	Puzzle    string  `json:"puzzle" yaml:"puzzle"`
	Part      int     `json:"part" yaml:"part"`
	Answer    string  `json:"answer" yaml:"answer"`
	Verified  bool    `json:"verified" yaml:"verified"`
	ElapsedMS float64 `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func newDocument(run *Run) document {
	doc := document{RunID: run.ID, Results: make([]resultDocument, 0, len(run.Results))}
	for _, r := range run.Results {
		doc.Results = append(doc.Results, resultDocument{
			Puzzle:    r.Puzzle,
			Part:      r.Part,
			Answer:    r.Answer,
			Verified:  r.Verified(),
			ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
		})
	}
	return doc
}

// Render writes run to w in the requested format.
func Render(w io.Writer, run *Run, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return renderText(w, run, opts.Color)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(run))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(run)); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return fmt.Errorf("cbor encoder initialization failed: %w", err)
		}
		return mode.NewEncoder(w).Encode(newDocument(run))
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}

var textHeader = []string{"PUZZLE", "PART", "ANSWER", "CHECK", "ELAPSED"}

const checkColumn = 3

// textBorder separates columns with two spaces and draws nothing else.
var textBorder = lipgloss.Border{Left: "  "}

func renderText(w io.Writer, run *Run, color bool) error {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	plain := renderer.NewStyle()
	header := renderer.NewStyle().Bold(true)
	verified := renderer.NewStyle().Foreground(lipgloss.Color("2"))

	rows := make([][]string, 0, len(run.Results))
	for _, r := range run.Results {
		check := "-"
		if r.Verified() {
			check = "ok"
		}
		rows = append(rows, []string{
			r.Puzzle,
			strconv.Itoa(r.Part),
			r.Answer,
			check,
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}

	t := table.New().
		Border(textBorder).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderStyle(plain).
		Headers(textHeader...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == checkColumn && rows[row][col] == "ok":
				return verified
			}
			return plain
		})

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(t.Render(), "\n"), "\n") {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
