package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoally/client/auth"
)

func TestStartClearsUnverifiableToken(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "eco_token")
	t.Setenv("ECO_API_URL", "http://127.0.0.1:1") // nothing listens here
	t.Setenv("ECO_TOKEN_PATH", tokenPath)
	t.Setenv("ECO_ENV", "test")

	a, err := New()
	require.NoError(t, err)
	require.NoError(t, a.Tokens.SetToken("stale-token"))

	a.Start(context.Background())

	assert.Equal(t, auth.StateLanding, a.Auth.State())
	assert.Equal(t, "", a.Tokens.Token())
}

func TestStartWithoutTokenStaysLoggedOut(t *testing.T) {
	t.Setenv("ECO_API_URL", "http://127.0.0.1:1")
	t.Setenv("ECO_TOKEN_PATH", filepath.Join(t.TempDir(), "eco_token"))
	t.Setenv("ECO_ENV", "test")

	a, err := New()
	require.NoError(t, err)

	a.Start(context.Background())
	assert.Equal(t, auth.StateLanding, a.Auth.State())
}
