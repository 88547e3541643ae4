package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	data := []byte("marksheet bytes")
	stored, err := storage.Save(data, "marksheet.pdf")
	require.NoError(t, err)

	assert.Equal(t, ".pdf", filepath.Ext(stored))

	onDisk, err := os.ReadFile(storage.FullPath(stored))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	require.NoError(t, storage.Delete(stored))
	_, err = os.Stat(storage.FullPath(stored))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.Save([]byte("a"), "doc.pdf")
	require.NoError(t, err)
	second, err := storage.Save([]byte("b"), "doc.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, storage.Delete("does-not-exist.pdf"))
	assert.NoError(t, storage.Delete(""))
}
