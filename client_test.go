package cif_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cif "github.com/tphakala/go-cif"
)

func TestNewClient(t *testing.T) {
	t.Run("success with token only uses defaults", func(t *testing.T) {
		client, err := cif.NewClient(
			cif.WithToken("secret-token"),
		)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NotNil(t, client.Observables)
		assert.NotNil(t, client.Feeds)
		assert.Equal(t, "https://localhost", client.Remote())
	})

	t.Run("error without token", func(t *testing.T) {
		_, err := cif.NewClient(
			cif.WithRemote("https://cif.example.com"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, cif.ErrNoToken)
	})

	t.Run("success with all options", func(t *testing.T) {
		client, err := cif.NewClient(
			cif.WithRemote("https://cif.example.com"),
			cif.WithToken("secret-token"),
			cif.WithTimeout(60*time.Second),
			cif.WithProxy("http://proxy.example.com:3128"),
			cif.WithInsecureSkipVerify(),
			cif.WithUserAgent("test-agent/1.0"),
		)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://cif.example.com", client.Remote())
	})

	t.Run("error with invalid proxy URL", func(t *testing.T) {
		_, err := cif.NewClient(
			cif.WithToken("secret-token"),
			cif.WithProxy("://bad"),
		)
		require.Error(t, err)
	})

	t.Run("success with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{
			Timeout: 90 * time.Second,
		}
		client, err := cif.NewClient(
			cif.WithToken("secret-token"),
			cif.WithHTTPClient(customClient),
		)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("trailing slash on remote is trimmed", func(t *testing.T) {
		client, err := cif.NewClient(
			cif.WithRemote("https://cif.example.com/"),
			cif.WithToken("secret-token"),
		)
		require.NoError(t, err)
		assert.Equal(t, "https://cif.example.com", client.Remote())
	})
}

func TestNewClientFromEnv(t *testing.T) {
	t.Run("reads remote and token from environment", func(t *testing.T) {
		t.Setenv("CIF_REMOTE", "https://env.example.com")
		t.Setenv("CIF_TOKEN", "env-token")

		client, err := cif.NewClientFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", client.Remote())
	})

	t.Run("error when environment has no token", func(t *testing.T) {
		t.Setenv("CIF_REMOTE", "https://env.example.com")
		t.Setenv("CIF_TOKEN", "")

		_, err := cif.NewClientFromEnv()
		require.Error(t, err)
		assert.ErrorIs(t, err, cif.ErrNoToken)
	})

	t.Run("explicit options override environment", func(t *testing.T) {
		t.Setenv("CIF_REMOTE", "https://env.example.com")
		t.Setenv("CIF_TOKEN", "env-token")

		client, err := cif.NewClientFromEnv(
			cif.WithRemote("https://override.example.com"),
		)
		require.NoError(t, err)
		assert.Equal(t, "https://override.example.com", client.Remote())
	})

	t.Run("timeout and TLS settings from environment", func(t *testing.T) {
		t.Setenv("CIF_TOKEN", "env-token")
		t.Setenv("CIF_TIMEOUT", "30")
		t.Setenv("CIF_NO_VERIFY_SSL", "true")

		client, err := cif.NewClientFromEnv()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}
