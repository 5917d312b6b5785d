// Package session wraps the gorilla cookie store with the handful of typed
// operations the handlers need: sign-in, sign-out, identity lookup and
// one-shot flash messages.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const userIDKey = "user_id"

// Store is a named cookie session store.
type Store struct {
	name  string
	store sessions.Store
}

// NewCookieStore creates a cookie-backed Store signed with the given keys.
func NewCookieStore(name string, keypairs ...[]byte) *Store {
	return &Store{
		name:  name,
		store: sessions.NewCookieStore(keypairs...),
	}
}

// Get returns the request's session, creating a fresh one when absent.
func (s *Store) Get(r *http.Request) (*sessions.Session, error) {
	return s.store.Get(r, s.name)
}

// SignIn binds the user id to the session cookie.
func (s *Store) SignIn(r *http.Request, w http.ResponseWriter, userID uint) error {
	sess, err := s.Get(r)
	if err != nil {
		return err
	}
	sess.Values[userIDKey] = userID
	return sess.Save(r, w)
}

// SignOut expires the session cookie.
func (s *Store) SignOut(r *http.Request, w http.ResponseWriter) error {
	sess, err := s.Get(r)
	if err != nil {
		return err
	}
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// UserID returns the signed-in user id, if any.
func (s *Store) UserID(r *http.Request) (uint, bool) {
	sess, err := s.Get(r)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Values[userIDKey].(uint)
	return id, ok
}

// Flash queues a one-shot message for the next rendered page.
func (s *Store) Flash(r *http.Request, w http.ResponseWriter, msg string) error {
	sess, err := s.Get(r)
	if err != nil {
		return err
	}
	sess.AddFlash(msg)
	return sess.Save(r, w)
}

// PopFlashes drains the queued messages, saving the emptied session.
func (s *Store) PopFlashes(r *http.Request, w http.ResponseWriter) []string {
	sess, err := s.Get(r)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		return nil
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}
