package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Telofy/swungdash/internal/app"
	"github.com/Telofy/swungdash/internal/hcl"
)

const takeoffHCL = `
settings {
  sample_count = 200
}

distribution "bias" {
  kind = "uniform"
  args = [100, 200]
}

distribution "fast" {
  kind = "normal"
  args = [2, 0.1]
}

distribution "slow" {
  kind = "normal"
  args = [0, 0.1]
}

mixture "weight" {
  components = ["fast", "slow"]
}

model "takeoff" {
  expression = "vars.weight * x**2 + vars.bias / 5"
  over       = [0, 1]
}
`

func writeModelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestApp(t *testing.T, content string, cfg *app.Config) (*app.App, *bytes.Buffer) {
	t.Helper()
	if cfg == nil {
		cfg = &app.Config{LogFormat: "text", LogLevel: "error"}
	}
	cfg.ModelPath = writeModelFile(t, content)

	var out bytes.Buffer
	return app.NewApp(&out, cfg, hcl.NewLoader()), &out
}

func TestAppRun(t *testing.T) {
	cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
	a, out := newTestApp(t, takeoffHCL, cfg)

	require.NoError(t, a.Run(context.Background(), cfg))
	output := out.String()

	assert.Contains(t, output, `model "takeoff": vars.weight * x**2 + vars.bias / 5`)
	assert.Contains(t, output, "[constant] bias")
	assert.Contains(t, output, "[constant] weight")
	assert.Contains(t, output, "[variable] x")
	assert.Contains(t, output, "[variable] ((weight * (x ** 2)) + (bias / 5))")
	assert.Contains(t, output, "x=0: n=200")
	assert.Contains(t, output, "x=1: n=200")
}

func TestAppRunSampleCountOverride(t *testing.T) {
	cfg := &app.Config{LogFormat: "text", LogLevel: "error", SampleCount: 50}
	a, out := newTestApp(t, takeoffHCL, cfg)

	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "x=0: n=50")
	assert.NotContains(t, out.String(), "n=200")
}

func TestAppRunWithoutModels(t *testing.T) {
	cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
	a, out := newTestApp(t, `
distribution "bias" {
  kind = "uniform"
  args = [100, 200]
}
`, cfg)

	require.NoError(t, a.Run(context.Background(), cfg))
	assert.NotContains(t, out.String(), "model ")
}

func TestAppRunErrors(t *testing.T) {
	t.Run("unknown distribution kind", func(t *testing.T) {
		cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
		a, _ := newTestApp(t, `
distribution "bias" {
  kind = "cauchy"
  args = [0, 1]
}
`, cfg)
		err := a.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, `unknown distribution kind "cauchy"`)
	})

	t.Run("duplicate name", func(t *testing.T) {
		cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
		a, _ := newTestApp(t, `
distribution "bias" {
  kind = "uniform"
  args = [100, 200]
}

distribution "bias" {
  kind = "normal"
  args = [0, 1]
}
`, cfg)
		err := a.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, `duplicate name "bias"`)
	})

	t.Run("mixture with unknown component", func(t *testing.T) {
		cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
		a, _ := newTestApp(t, `
mixture "weight" {
  components = ["missing"]
}
`, cfg)
		err := a.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, `unknown component "missing"`)
	})

	t.Run("expression over unknown name", func(t *testing.T) {
		cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
		a, _ := newTestApp(t, `
model "broken" {
  expression = "vars.missing * x"
}
`, cfg)
		err := a.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, `model "broken"`)
	})

	t.Run("invalid cache rule from file", func(t *testing.T) {
		cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
		a, _ := newTestApp(t, `
settings {
  cache_rule = "sometimes"
}

model "m" {
  expression = "x + 1"
}
`, cfg)
		err := a.Run(context.Background(), cfg)
		assert.ErrorContains(t, err, "unknown cache rule")
	})
}

func TestNewAppPanicsOnLoadFailure(t *testing.T) {
	var out bytes.Buffer
	cfg := &app.Config{
		ModelPath: filepath.Join(t.TempDir(), "missing.hcl"),
		LogFormat: "text",
		LogLevel:  "error",
	}
	assert.Panics(t, func() { app.NewApp(&out, cfg, hcl.NewLoader()) })
}

func TestAppModelAccessor(t *testing.T) {
	cfg := &app.Config{LogFormat: "text", LogLevel: "error"}
	a, _ := newTestApp(t, takeoffHCL, cfg)

	model := a.Model()
	require.NotNil(t, model)
	assert.Equal(t, 200, model.Settings.SampleCount)
	assert.Len(t, model.Distributions, 3)
	assert.Len(t, model.Mixtures, 1)
	assert.Len(t, model.Models, 1)
}
