package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecoally", TokenFile)
	store := NewFileStore(path)

	assert.Equal(t, "", store.Token())

	require.NoError(t, store.SetToken("opaque-token-123"))
	assert.Equal(t, "opaque-token-123", store.Token())

	require.NoError(t, store.Clear())
	assert.Equal(t, "", store.Token())
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), TokenFile))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), TokenFile))

	require.NoError(t, store.SetToken("first"))
	require.NoError(t, store.SetToken("second"))
	assert.Equal(t, "second", store.Token())
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	assert.Equal(t, "", store.Token())
	require.NoError(t, store.SetToken("tok"))
	assert.Equal(t, "tok", store.Token())
	require.NoError(t, store.Clear())
	assert.Equal(t, "", store.Token())
}
