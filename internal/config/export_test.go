package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExportSettingsMissingFileUsesDefaults(t *testing.T) {
	cfg := Config{ExportSettingsPath: filepath.Join(t.TempDir(), "export.yaml")}

	settings, err := LoadExportSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultExportSettings(), settings)
}

func TestLoadExportSettingsReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  paperSize: Letter\n  fontSize: 11\n"), 0o600))

	settings, err := LoadExportSettings(Config{ExportSettingsPath: path})
	require.NoError(t, err)
	assert.Equal(t, "Letter", settings.PaperSize)
	assert.Equal(t, 11, settings.FontSize)
	assert.Equal(t, "portrait", settings.Orientation)
}

func TestLoadExportSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export: [not: a map\n"), 0o600))

	_, err := LoadExportSettings(Config{ExportSettingsPath: path})
	assert.Error(t, err)
}
