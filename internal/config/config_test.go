package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "turing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_AlphabetForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"String", "alphabet: xyz\n", []string{"x", "y", "z"}},
		{"List", "alphabet: [\"0\", \"1\", \"#\"]\n", []string{"0", "1", "#"}},
		{"Multi Rune Symbols", "alphabet:\n  - ab\n  - cd\n", []string{"ab", "cd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Alphabet)
			assert.Equal(t, "~", cfg.Blank, "unset keys keep defaults")
		})
	}
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "alphabet: \"01\"\nblank: _\nlog_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, cfg.Alphabet)
	assert.Equal(t, "_", cfg.Blank)
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Unknown Key", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "alphabet: ab\nstates: 3\n"))
		assert.Error(t, err)
	})

	t.Run("Bad YAML", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "alphabet: [a, b\n"))
		assert.Error(t, err)
	})
}

func TestApply_FlagOverrides(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Apply(map[string]any{"blank": "#", "alphabet": "01"}))

	m, err := cfg.NewMachine()
	require.NoError(t, err)
	assert.Equal(t, []string{"#", "0", "1"}, m.Alphabet())
	assert.Equal(t, "#", m.Blank())
}

func TestNewMachine_EmptyBlank(t *testing.T) {
	cfg := config.Default()
	cfg.Blank = ""
	_, err := cfg.NewMachine()
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
}
