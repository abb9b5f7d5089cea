package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rheumassoc/api/internal/config"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "report.pdf", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/report.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestDiskStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewSelectsDriver(t *testing.T) {
	store, err := New(config.StorageConfig{Driver: "disk", UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &DiskStore{}, store)

	// Empty driver defaults to disk.
	store, err = New(config.StorageConfig{UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &DiskStore{}, store)

	_, err = New(config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}
