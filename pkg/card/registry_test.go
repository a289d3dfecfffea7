package card_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechmx/validations/pkg/card"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("valid table", func(t *testing.T) {
		registry, err := card.NewRegistry(map[string]string{
			"477213": "40012",
			"554629": "40014",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, registry.Len())

		bankCode, ok := registry.BankCode("477213")
		require.True(t, ok)
		assert.Equal(t, "40012", bankCode)

		_, ok = registry.BankCode("999999")
		assert.False(t, ok)
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		malformed := []string{"47721", "4772134", "47721a", ""}
		for _, key := range malformed {
			_, err := card.NewRegistry(map[string]string{key: "40012"})
			assert.ErrorIs(t, err, card.ErrInvalidBIN, "key %q", key)
		}
	})

	t.Run("copies the input", func(t *testing.T) {
		bins := map[string]string{"477213": "40012"}
		registry, err := card.NewRegistry(bins)
		require.NoError(t, err)

		bins["477213"] = "tampered"
		bankCode, _ := registry.BankCode("477213")
		assert.Equal(t, "40012", bankCode)
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	registry := card.DefaultRegistry()
	require.NotZero(t, registry.Len())

	bankCode, ok := registry.BankCode("477213")
	require.True(t, ok)
	assert.Equal(t, "40012", bankCode)

	bins := registry.BINs()
	assert.Len(t, bins, registry.Len())
	assert.True(t, sort.StringsAreSorted(bins))

	// Same shared instance on every call.
	assert.Same(t, registry, card.DefaultRegistry())
}

func TestLoadRegistryFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bins.yaml")
		content := "\"477213\": \"40012\"\n\"554629\": \"40014\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		registry, err := card.LoadRegistryFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, registry.Len())

		bankCode, ok := registry.BankCode("554629")
		require.True(t, ok)
		assert.Equal(t, "40014", bankCode)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := card.LoadRegistryFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bins.yaml")
		require.NoError(t, os.WriteFile(path, []byte("[not, a, mapping]"), 0o600))

		_, err := card.LoadRegistryFile(path)
		assert.Error(t, err)
	})

	t.Run("malformed key in file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bins.yaml")
		require.NoError(t, os.WriteFile(path, []byte("\"47721\": \"40012\"\n"), 0o600))

		_, err := card.LoadRegistryFile(path)
		assert.ErrorIs(t, err, card.ErrInvalidBIN)
	})
}
