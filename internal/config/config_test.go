package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/nova/internal/theme"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
theme: light
base_url: https://suite.example.com
registry_file: tools.yaml
logging:
  level: debug
  file: /tmp/nova.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, theme.Light, cfg.ThemeValue())
	assert.Equal(t, "https://suite.example.com", cfg.BaseURL)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "tools.yaml"), cfg.RegistryFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/nova.log", cfg.Logging.File)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("NOVA_TEST_BASE", "https://tools.example.org")
	path := writeConfig(t, "base_url: ${NOVA_TEST_BASE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://tools.example.org", cfg.BaseURL)
}

func TestLoad_DefaultsWhenFieldsOmitted(t *testing.T) {
	path := writeConfig(t, "base_url: https://x.example.com\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, string(theme.Default), cfg.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_UnknownThemeRejected(t *testing.T) {
	path := writeConfig(t, "theme: sepia\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"relative base url", "base_url: suite.example.com\n"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"malformed yaml", "theme: [dark\n"},
		{"unknown key", "base_ur: https://suite.example.com\n"},
		{"unknown nested key", "logging:\n  lvl: debug\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, string(theme.Default), cfg.Theme)
}

func TestDefaultPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "nova", "config.yaml"), DefaultPath())
}

func TestExpandEnvVars_UnsetBecomesEmpty(t *testing.T) {
	assert.Equal(t, "a--b", expandEnvVars("a-${NOVA_DEFINITELY_UNSET}-b"))
}

func TestLoad_CommentOnlyFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing configured yet\n"))
	require.NoError(t, err)
	assert.Equal(t, string(theme.Default), cfg.Theme)
}
