package sessions

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	visitorCookieName = "fitstore-visitor"
	visitorIDKey      = "visitorID"
)

type VisitorStore interface {
	// VisitorID returns the id of the visitor making r, issuing and saving a
	// new one on the first visit.
	VisitorID(w http.ResponseWriter, r *http.Request) (string, error)
}

type CookieVisitorStore struct {
	store *sessions.CookieStore
}

func NewCookieVisitorStore(secure bool, keyPairs ...[]byte) *CookieVisitorStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(365 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieVisitorStore{store: store}
}

func (c *CookieVisitorStore) VisitorID(w http.ResponseWriter, r *http.Request) (string, error) {
	// An undecodable cookie still returns a fresh session, which gets a new id.
	session, _ := c.store.Get(r, visitorCookieName)
	if session == nil {
		return "", errors.New("visitor session unavailable")
	}

	if id, ok := session.Values[visitorIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.New().String()
	session.Values[visitorIDKey] = id
	if err := session.Save(r, w); err != nil {
		return "", errors.Wrap(err, "save visitor session")
	}
	return id, nil
}
