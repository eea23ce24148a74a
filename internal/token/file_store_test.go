package token

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveLoad(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session", "token"))
	require.NoError(t, err)

	require.NoError(t, store.Save("abc.def.ghi"))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", got)
}

func TestFileStoreLoadAbsent(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoToken)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, store.Save("first"))
	require.NoError(t, store.Save("second"))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "second", got)
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, store.Save("value"))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoToken)
}

func TestFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("  ")
	require.Error(t, err)
}
