package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("value-iteration", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, Config{Size: 4, ReportInterval: 100}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("VALUE_ITERATION_SIZE", "6")
	t.Setenv("VALUE_ITERATION_REPORT_INTERVAL", "25")
	t.Setenv("VALUE_ITERATION_OUTPUT", "run.log")
	t.Setenv("VALUE_ITERATION_MAX_SWEEPS", "1000")
	t.Setenv("NO_COLOR", "true")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Size)
	assert.Equal(t, 25, cfg.ReportInterval)
	assert.Equal(t, "run.log", cfg.Output)
	assert.Equal(t, 1000, cfg.MaxSweeps)
	assert.True(t, cfg.NoColor)
}

func TestNoColorAcceptsAnyValue(t *testing.T) {
	for _, value := range []string{"1", "yes", "on", "please", "false"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("NO_COLOR", value)

			cfg, err := ParseConfig(newFlagSet(), nil)
			require.NoError(t, err)
			assert.True(t, cfg.NoColor)
		})
	}
}

func TestEmptyNoColorKeepsColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.False(t, cfg.NoColor)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VALUE_ITERATION_SIZE", "6")

	cfg, err := ParseConfig(newFlagSet(), []string{"-s", "5", "-o", "out.txt", "-chart", "delta.html", "-interval", "10"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Size)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, "delta.html", cfg.Chart)
	assert.Equal(t, 10, cfg.ReportInterval)
}

func TestLongFlags(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{"-size", "3", "-output", "x.log", "-no-color", "-max-sweeps", "7"})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Size)
	assert.Equal(t, "x.log", cfg.Output)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 7, cfg.MaxSweeps)
}

func TestParseConfigEnvError(t *testing.T) {
	t.Setenv("VALUE_ITERATION_SIZE", "four")

	_, err := ParseConfig(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseConfigFlagError(t *testing.T) {
	_, err := ParseConfig(newFlagSet(), []string{"-size", "big"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"ok", Config{Size: 2, ReportInterval: 1}, nil},
		{"size one", Config{Size: 1, ReportInterval: 1}, ErrInvalidSize},
		{"zero interval", Config{Size: 4, ReportInterval: 0}, ErrInvalidInterval},
		{"negative cap", Config{Size: 4, ReportInterval: 1, MaxSweeps: -1}, ErrInvalidMaxSweeps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
