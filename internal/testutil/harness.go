package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/stepgrid/internal/app"
	"github.com/vk/stepgrid/internal/hcl"
	"github.com/vk/stepgrid/internal/registry"
	"github.com/vk/stepgrid/internal/report"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp provides a standardized harness for running integration tests
// using a default background context.
func RunApp(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, cfg, modules...)
}

// RunAppWithContext writes files into a temporary directory, points the
// app at it and runs it to completion. An empty cfg.RunPath means the
// whole directory; otherwise it is taken relative to that directory.
// Output defaults to json so results can be checked with AssertAnswer.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg.RunPath = filepath.Join(tmpDir, cfg.RunPath)
	if cfg.Output == "" {
		cfg.Output = report.FormatJSON
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &app.SafeBuffer{}, &app.SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		result.App, result.Err = app.NewApp(out, logs, appConfig, hcl.NewLoader(), modules...)
	}()
	if result.Err == nil {
		result.Err = result.App.Run(ctx)
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	if os.Getenv("STEPGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
