package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-registration-portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorage_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStorage(config.UploadConfig{Dir: dir})
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("photo-bytes"), "me.png")
	require.NoError(t, err)

	assert.Equal(t, ".png", filepath.Ext(path))
	assert.True(t, strings.HasPrefix(path, filepath.ToSlash(dir)+"/"))

	content, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, "photo-bytes", string(content))
}

func TestDiskStorage_SaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewDiskStorage(config.UploadConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("a"), "same.jpg")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "same.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStorage_SaveWithoutExtension(t *testing.T) {
	store, err := NewDiskStorage(config.UploadConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("x"), "noext")
	require.NoError(t, err)
	assert.Equal(t, "", filepath.Ext(path))
}

func TestNewDiskStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStorage(config.UploadConfig{Dir: dir})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
