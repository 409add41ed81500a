package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigValid(t *testing.T) {
	path := writeConfig(t, `
version: "1.0.0"
theme:
  name: dark
  overrides:
    primary: "#7c3aed"
tooltip:
  placement: bottom-start
  trigger: hover
  open_delay_ms: 200
  close_delay_ms: 300
occasions:
  seed: 42
  custom:
    - name: launch-day
      date: "06-01"
      colors: ["#ff00ff"]
`)

	cfg, err := ParseConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme.Name)
	assert.Equal(t, "bottom-start", cfg.Tooltip.Placement)
	assert.Equal(t, 200, cfg.Tooltip.OpenDelayMs)
	assert.Equal(t, int64(42), cfg.Occasions.Seed)
	require.Len(t, cfg.Occasions.Custom, 1)
	assert.Equal(t, "launch-day", cfg.Occasions.Custom[0].Name)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *glinterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestParseConfigInvalidYAMLReportsLine(t *testing.T) {
	path := writeConfig(t, "version: \"1.0.0\"\ntheme: [\n")

	_, err := ParseConfig(path)

	var parseErr *glinterrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Greater(t, parseErr.Line, 0)
}

func TestParseConfigValidationFailure(t *testing.T) {
	path := writeConfig(t, `
version: "1.0.0"
tooltip:
  placement: middle
`)

	_, err := ParseConfig(path)

	var validationErr *glinterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Field, "placement")
}

func TestParseConfigRequiresVersion(t *testing.T) {
	path := writeConfig(t, "theme:\n  name: light\n")

	_, err := ParseConfig(path)

	var validationErr *glinterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}
