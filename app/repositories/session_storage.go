package repositories

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const storageSessionName = "fitstore-storage"

// SessionStorage keeps a visitor's entries in their own server-side session
// file; the browser only carries the signed session id cookie.
type SessionStorage struct {
	store *sessions.FilesystemStore
}

func NewSessionStorage(dir string, maxAge int, keyPairs ...[]byte) *SessionStorage {
	store := sessions.NewFilesystemStore(dir, keyPairs...)
	store.MaxLength(0)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStorage{store: store}
}

func (s *SessionStorage) Open(w http.ResponseWriter, r *http.Request, _ string) (KeyValueStore, error) {
	session, err := s.store.Get(r, storageSessionName)
	if err != nil && session == nil {
		return nil, errors.Wrap(ErrStorageUnavailable, err.Error())
	}
	// A tampered or expired cookie yields a fresh session, which is an empty store.
	return &sessionScope{session: session, w: w, r: r}, nil
}

type sessionScope struct {
	session *sessions.Session
	w       http.ResponseWriter
	r       *http.Request
}

func (s *sessionScope) GetItem(key string) (string, bool, error) {
	value, ok := s.session.Values[key].(string)
	return value, ok, nil
}

func (s *sessionScope) SetItem(key, value string) error {
	s.session.Values[key] = value
	return errors.Wrap(s.session.Save(s.r, s.w), "save storage session")
}

func (s *sessionScope) RemoveItem(key string) error {
	delete(s.session.Values, key)
	return errors.Wrap(s.session.Save(s.r, s.w), "save storage session")
}
