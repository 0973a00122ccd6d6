package configs

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/pkg/errors"
)

type SessionKeys struct {
	AuthKey []byte
	EncKey  []byte
	CSRFKey []byte
}

// LoadSessionKeys decodes the base64 keys from env. CSRFKey stays nil when
// CSRF_KEY is unset, which disables CSRF protection.
func LoadSessionKeys(env ENV) (*SessionKeys, error) {
	if env.AppAuthKey == "" {
		return nil, errors.New("APP_AUTH_KEY environment variable not set")
	}
	if env.AppEncKey == "" {
		return nil, errors.New("APP_ENC_KEY environment variable not set")
	}

	authKey, err := base64.URLEncoding.DecodeString(env.AppAuthKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode APP_AUTH_KEY from Base64")
	}
	encKey, err := base64.URLEncoding.DecodeString(env.AppEncKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode APP_ENC_KEY from Base64")
	}
	if len(encKey) != 16 && len(encKey) != 24 && len(encKey) != 32 {
		return nil, errors.Errorf("APP_ENC_KEY has invalid length %d after decoding. Must be 16, 24, or 32 bytes for AES encryption", len(encKey))
	}

	keys := &SessionKeys{AuthKey: authKey, EncKey: encKey}
	if env.CSRFKey != "" {
		csrfKey, err := base64.URLEncoding.DecodeString(env.CSRFKey)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode CSRF_KEY from Base64")
		}
		if len(csrfKey) != 32 {
			return nil, errors.Errorf("CSRF_KEY has invalid length %d after decoding. Must be 32 bytes", len(csrfKey))
		}
		keys.CSRFKey = csrfKey
	}
	return keys, nil
}

// GenerateSessionKeys returns fresh base64 values for APP_AUTH_KEY,
// APP_ENC_KEY and CSRF_KEY.
func GenerateSessionKeys() (map[string]string, error) {
	sizes := []struct {
		name string
		size int
	}{
		{"APP_AUTH_KEY", 64},
		{"APP_ENC_KEY", 32},
		{"CSRF_KEY", 32},
	}

	keys := make(map[string]string, len(sizes))
	for _, s := range sizes {
		key := securecookie.GenerateRandomKey(s.size)
		if key == nil {
			return nil, errors.Errorf("could not generate %s", s.name)
		}
		keys[s.name] = base64.URLEncoding.EncodeToString(key)
	}
	return keys, nil
}

func WriteSessionKeys(path string, keys map[string]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", path)
	}
	defer file.Close()

	for _, name := range []string{"APP_AUTH_KEY", "APP_ENC_KEY", "CSRF_KEY"} {
		if _, err := fmt.Fprintf(file, "%s=%s\n", name, keys[name]); err != nil {
			return errors.Wrapf(err, "failed to write keys to file %s", path)
		}
	}
	return nil
}
