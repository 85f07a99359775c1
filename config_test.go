package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	rc := "# comment\nsavedirectory = " + filepath.Join(home, "stories") + "\nconfirmations = false\nexport_scale = 2.5\nnot a pair\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".skeinrc"), []byte(rc), 0644))

	config := loadConfig()
	assert.Equal(t, filepath.Join(home, "stories"), config.SaveDirectory)
	assert.False(t, config.Confirmations)
	assert.Equal(t, 2.5, config.ExportScale)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config := loadConfig()
	assert.Empty(t, config.SaveDirectory)
	assert.True(t, config.Confirmations)
	assert.Equal(t, 1.0, config.ExportScale)
}

func TestGetSavePath(t *testing.T) {
	c := &Config{}
	assert.Equal(t, "story.yaml", c.GetSavePath("story.yaml"))

	dir := filepath.Join(t.TempDir(), "out")
	c.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "story.yaml"), c.GetSavePath("story.yaml"))
	assert.DirExists(t, dir)
}
