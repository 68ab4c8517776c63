package rdnconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsYaml(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "indent: \"\\t\"\nallow_comments: true\nallow_trailing_commas: true\nmax_depth: 32\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rdnfmt.yaml"), []byte(yamlBody), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "\t", cfg.Indent)
	assert.True(t, cfg.AllowComments)
	assert.True(t, cfg.AllowTrailingCommas)
	assert.Equal(t, 32, cfg.MaxDepth)
}

func TestLoad_InvalidYamlErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rdnfmt.yaml"), []byte("not: [valid"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
