package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	data := `{
		"window": {"width": 1920, "height": 1080, "title": "big"},
		"meshes": {"canSectors": 12, "canStacks": 2, "ballSectors": 8, "ballStacks": 4, "smooth": false},
		"preview": {"port": 8080}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, s.Window.Width)
	assert.Equal(t, "big", s.Window.Title)
	assert.Equal(t, 12, s.Meshes.CanSectors)
	assert.False(t, s.Meshes.Smooth)
	assert.Equal(t, 8080, s.Preview.Port)
	// Untouched sections keep their defaults.
	assert.Equal(t, Defaults().Lights, s.Lights)
	assert.Equal(t, Defaults().Camera, s.Camera)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
