package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSessionKeys_RoundTripsGeneratedKeys(t *testing.T) {
	generated, err := GenerateSessionKeys()
	require.NoError(t, err)

	keys, err := LoadSessionKeys(ENV{
		AppAuthKey: generated["APP_AUTH_KEY"],
		AppEncKey:  generated["APP_ENC_KEY"],
		CSRFKey:    generated["CSRF_KEY"],
	})
	require.NoError(t, err)
	assert.Len(t, keys.AuthKey, 64)
	assert.Len(t, keys.EncKey, 32)
	assert.Len(t, keys.CSRFKey, 32)
}

func TestLoadSessionKeys_Errors(t *testing.T) {
	_, err := LoadSessionKeys(ENV{})
	assert.Error(t, err)

	_, err = LoadSessionKeys(ENV{AppAuthKey: "YWJj", AppEncKey: "YWJj"})
	assert.ErrorContains(t, err, "invalid length")
}

func TestLoadSessionKeys_CSRFOptional(t *testing.T) {
	generated, err := GenerateSessionKeys()
	require.NoError(t, err)

	keys, err := LoadSessionKeys(ENV{AppAuthKey: generated["APP_AUTH_KEY"], AppEncKey: generated["APP_ENC_KEY"]})
	require.NoError(t, err)
	assert.Nil(t, keys.CSRFKey)
}

func TestWriteSessionKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.new_keys")
	require.NoError(t, WriteSessionKeys(path, map[string]string{"APP_AUTH_KEY": "a", "APP_ENC_KEY": "b", "CSRF_KEY": "c"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "APP_AUTH_KEY=a\nAPP_ENC_KEY=b\nCSRF_KEY=c\n", string(data))
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("CART_STORAGE", "")
	t.Setenv("REDIS_DB", "not-a-number")

	env := LoadEnv()
	assert.Equal(t, StorageSession, env.CartStorage)
	assert.Equal(t, 0, env.RedisDB)
	assert.False(t, env.IsProduction())
}
