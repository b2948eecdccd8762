package executor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stepgrid/internal/config"
	"github.com/vk/stepgrid/internal/ctxlog"
	hcladapter "github.com/vk/stepgrid/internal/hcl"
	"github.com/vk/stepgrid/internal/registry"
)

type echoOptions struct {
	Repeat int `cty:"repeat"`
}

func newTestRegistry() *registry.Registry {
	reg := registry.New()
	reg.RegisterSolver("echo", &registry.Solver{
		NewOptions: func() any { return &echoOptions{Repeat: 1} },
		Parts: map[int]registry.PartFunc{
			1: registry.Typed(func(_ context.Context, input string, opts *echoOptions) (any, error) {
				return strings.Repeat(strings.TrimSpace(input), opts.Repeat), nil
			}),
			2: registry.Typed(func(_ context.Context, input string, _ *echoOptions) (any, error) {
				return len(strings.TrimSpace(input)), nil
			}),
		},
	})
	reg.RegisterSolver("plain", &registry.Solver{
		Parts: map[int]registry.PartFunc{
			1: func(context.Context, string, any) (any, error) { return 42, nil },
		},
	})
	reg.RegisterSolver("broken", &registry.Solver{
		Parts: map[int]registry.PartFunc{
			1: func(context.Context, string, any) (any, error) { return nil, errors.New("boom") },
		},
	})
	return reg
}

func expr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	e, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return e
}

func newTestExecutor(workers int) *Executor {
	return New(newTestRegistry(), hcladapter.NewConverter(), workers)
}

func TestPlanAndExecute(t *testing.T) {
	ctx := context.Background()
	inputPath := filepath.Join(t.TempDir(), "echo.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("ab\n"), 0o644))

	model := &config.Model{Puzzles: []*config.Puzzle{
		{
			Name:      "echo",
			InputPath: inputPath,
			Expect:    map[string]string{"part1": "ababab", "part2": "2"},
			Options:   map[string]hcl.Expression{"repeat": expr(t, "3")},
		},
		{Name: "plain", InputText: "ignored"},
	}}

	exec := newTestExecutor(1)
	jobs, err := exec.Plan(ctx, model, Filter{})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "echo", jobs[0].Puzzle)
	assert.Equal(t, 1, jobs[0].Part)
	assert.Equal(t, "ab\n", jobs[0].Input)
	assert.Equal(t, &echoOptions{Repeat: 3}, jobs[0].Options)
	assert.Nil(t, jobs[2].Options)

	results, err := exec.Execute(ctx, jobs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "ababab", results[0].Answer)
	assert.True(t, results[0].Verified())
	assert.Equal(t, "2", results[1].Answer)
	assert.Equal(t, "plain", results[2].Puzzle)
	assert.Equal(t, "42", results[2].Answer)
	assert.False(t, results[2].Verified())
}

func TestPlan_WarnsAboutSkippedExpectations(t *testing.T) {
	testCases := []struct {
		name     string
		parts    []int
		filter   Filter
		wantWarn []string
	}{
		{"all parts run", nil, Filter{}, nil},
		{"declared parts leave one out", []int{1}, Filter{}, []string{"expect=part2"}},
		{"part filter leaves one out", nil, Filter{Part: 2}, []string{"expect=part1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
			ctx := ctxlog.WithLogger(context.Background(), logger)

			model := &config.Model{Puzzles: []*config.Puzzle{{
				Name:      "echo",
				InputText: "ab",
				Parts:     tc.parts,
				Expect:    map[string]string{"part1": "ab", "part2": "2"},
			}}}
			_, err := newTestExecutor(1).Plan(ctx, model, tc.filter)
			require.NoError(t, err)

			if len(tc.wantWarn) == 0 {
				assert.Empty(t, logs.String())
				return
			}
			for _, want := range tc.wantWarn {
				assert.Contains(t, logs.String(), want)
			}
			assert.Contains(t, logs.String(), "Expectation skipped")
			assert.Equal(t, len(tc.wantWarn), strings.Count(logs.String(), "Expectation skipped"))
		})
	}
}

func TestPlan_Filters(t *testing.T) {
	ctx := context.Background()
	model := &config.Model{Puzzles: []*config.Puzzle{
		{Name: "echo", InputText: "x", Parts: []int{2, 1, 2}},
		{Name: "plain", InputText: "y"},
	}}
	exec := newTestExecutor(1)

	t.Run("declared parts are sorted and unique", func(t *testing.T) {
		jobs, err := exec.Plan(ctx, model, Filter{Puzzle: "echo"})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, 1, jobs[0].Part)
		assert.Equal(t, 2, jobs[1].Part)
	})

	t.Run("part filter", func(t *testing.T) {
		jobs, err := exec.Plan(ctx, model, Filter{Part: 2})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "echo", jobs[0].Puzzle)
	})

	t.Run("filter leaves nothing", func(t *testing.T) {
		_, err := exec.Plan(ctx, model, Filter{Puzzle: "plain", Part: 2})
		assert.ErrorIs(t, err, ErrNothingToRun)
	})

	t.Run("unknown puzzle filter", func(t *testing.T) {
		_, err := exec.Plan(ctx, model, Filter{Puzzle: "day99"})
		assert.ErrorContains(t, err, `puzzle "day99" is not declared`)
	})
}

func TestPlan_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		puzzle  *config.Puzzle
		wantIs  error
		wantErr string
	}{
		{
			name:   "unregistered solver",
			puzzle: &config.Puzzle{Name: "day99", InputText: "x"},
			wantIs: registry.ErrUnknownPuzzle,
		},
		{
			name:    "missing part",
			puzzle:  &config.Puzzle{Name: "plain", InputText: "x", Parts: []int{2}},
			wantErr: "part 2 not implemented",
		},
		{
			name:    "expect names unknown part",
			puzzle:  &config.Puzzle{Name: "plain", InputText: "x", Expect: map[string]string{"part3": "1"}},
			wantErr: `expect key "part3"`,
		},
		{
			name:    "options for solver without options",
			puzzle:  &config.Puzzle{Name: "plain", InputText: "x", Options: map[string]hcl.Expression{"repeat": nil}},
			wantErr: "solver takes no options",
		},
		{
			name:    "missing input file",
			puzzle:  &config.Puzzle{Name: "plain", InputPath: "/does/not/exist.txt"},
			wantIs:  os.ErrNotExist,
			wantErr: "failed to read input",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model := &config.Model{Puzzles: []*config.Puzzle{tc.puzzle}}
			_, err := newTestExecutor(1).Plan(context.Background(), model, Filter{})
			require.Error(t, err)
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}

	t.Run("bad option value", func(t *testing.T) {
		model := &config.Model{Puzzles: []*config.Puzzle{{
			Name:      "echo",
			InputText: "x",
			Options:   map[string]hcl.Expression{"repeat": expr(t, `"lots"`)},
		}}}
		_, err := newTestExecutor(1).Plan(context.Background(), model, Filter{})
		assert.ErrorContains(t, err, "invalid options")
	})
}

func TestExecute_UnexpectedAnswer(t *testing.T) {
	ctx := context.Background()
	model := &config.Model{Puzzles: []*config.Puzzle{
		{Name: "plain", InputText: "x", Expect: map[string]string{"part1": "41"}},
	}}
	exec := newTestExecutor(1)

	jobs, err := exec.Plan(ctx, model, Filter{})
	require.NoError(t, err)

	results, err := exec.Execute(ctx, jobs)
	assert.ErrorIs(t, err, ErrUnexpectedAnswer)
	assert.ErrorContains(t, err, `plain part 1: unexpected answer: got "42", want "41"`)
	assert.Nil(t, results)
}

func TestExecute_FailureStopsRemainingJobs(t *testing.T) {
	var ran atomic.Int32
	counting := func(context.Context, string, any) (any, error) {
		ran.Add(1)
		return 1, nil
	}
	jobs := []Job{
		{Puzzle: "broken", Part: 1, Run: func(context.Context, string, any) (any, error) { return nil, errors.New("boom") }},
		{Puzzle: "later", Part: 1, Run: counting},
		{Puzzle: "later", Part: 2, Run: counting},
	}

	_, err := newTestExecutor(1).Execute(context.Background(), jobs)
	assert.ErrorContains(t, err, "broken part 1: boom")
	assert.Equal(t, int32(0), ran.Load(), "jobs after a failure must not run")
}

func TestExecute_ParallelKeepsOrder(t *testing.T) {
	var jobs []Job
	for i := 1; i <= 20; i++ {
		jobs = append(jobs, Job{
			Puzzle: "n",
			Part:   i,
			Run: func(context.Context, string, any) (any, error) {
				return i * i, nil
			},
		})
	}

	results, err := newTestExecutor(4).Execute(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 20)
	for i, r := range results {
		assert.Equal(t, i+1, r.Part)
	}
	assert.Equal(t, "400", results[19].Answer)
}
