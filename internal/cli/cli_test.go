package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional model path", func(t *testing.T) {
		var out bytes.Buffer
		config, exit, err := Parse([]string{"models/takeoff.hcl"}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "models/takeoff.hcl", config.ModelPath)
		assert.Equal(t, "text", config.LogFormat)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, 0, config.SampleCount)
		assert.Equal(t, "", config.CacheRule)
	})

	t.Run("model flag", func(t *testing.T) {
		var out bytes.Buffer
		config, exit, err := Parse([]string{"-model", "grid/"}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "grid/", config.ModelPath)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		var out bytes.Buffer
		config, exit, err := Parse([]string{"-m", "grid/"}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "grid/", config.ModelPath)
	})

	t.Run("model flag wins over positional", func(t *testing.T) {
		var out bytes.Buffer
		config, _, err := Parse([]string{"-model", "a.hcl", "b.hcl"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "a.hcl", config.ModelPath)
	})

	t.Run("all overrides", func(t *testing.T) {
		var out bytes.Buffer
		config, exit, err := Parse([]string{
			"-samples", "500",
			"-cache-rule", "always",
			"-log-format", "json",
			"-log-level", "debug",
			"model.hcl",
		}, &out)
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, 500, config.SampleCount)
		assert.Equal(t, "always", config.CacheRule)
		assert.Equal(t, "json", config.LogFormat)
		assert.Equal(t, "debug", config.LogLevel)
	})
}

func TestParseExitsCleanly(t *testing.T) {
	t.Run("no path prints usage", func(t *testing.T) {
		var out bytes.Buffer
		config, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, config)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag", func(t *testing.T) {
		var out bytes.Buffer
		_, exit, err := Parse([]string{"-h"}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
	})
}

func TestParseRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad log format", []string{"-log-format", "xml", "m.hcl"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "verbose", "m.hcl"}, "invalid log-level"},
		{"negative samples", []string{"-samples", "-1", "m.hcl"}, "invalid samples"},
		{"bad cache rule", []string{"-cache-rule", "sometimes", "m.hcl"}, "invalid cache-rule"},
		{"unknown flag", []string{"-frobnicate", "m.hcl"}, "flag provided but not defined"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
