package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".classboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
store_url: https://store.example.edu
store_api_key: abc123
teacher_id: T-42
class_sections:
  - 10-A
  - 10-B
telemetry: true
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://store.example.edu", cfg.StoreURL)
	assert.Equal(t, "abc123", cfg.StoreAPIKey)
	assert.Equal(t, "T-42", cfg.TeacherID)
	assert.Equal(t, []string{"10-A", "10-B"}, cfg.ClassSections)
	assert.True(t, cfg.Telemetry)
	assert.Nil(t, cfg.Theme)
}

func TestLoadFileWithThemeOverride(t *testing.T) {
	path := writeConfig(t, `
store_url: https://store.example.edu
theme:
  colors:
    gold: "#AAAA00"
  title:
    text: Period 3
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Theme)
	assert.Equal(t, "#AAAA00", cfg.Theme.Colors.Gold)
	assert.Equal(t, "Period 3", cfg.Theme.Title.Text)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, "store_url: [unclosed")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
store_url: https://file.example.edu
teacher_id: T-1
`)
	t.Setenv("CLASSBOARD_STORE_URL", "https://env.example.edu")
	t.Setenv("CLASSBOARD_SECTIONS", " 11-C, 11-D ,")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.edu", cfg.StoreURL)
	assert.Equal(t, "T-1", cfg.TeacherID, "env does not clear fields it does not set")
	assert.Equal(t, []string{"11-C", "11-D"}, cfg.ClassSections)
}

func TestSplitSections(t *testing.T) {
	assert.Equal(t, []string{"10-A"}, splitSections("10-A"))
	assert.Equal(t, []string{"10-A", "10-B"}, splitSections("10-A,10-B"))
	assert.Nil(t, splitSections(",,"))
}
