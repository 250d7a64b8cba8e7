package common

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie that carries the visitor session.
const SessionName = "piper-site"

const ownerKey = "owner"

// OwnerToken returns the visitor's owner token, issuing and saving a new one
// on first visit. It must run before the response body is written.
func OwnerToken(w http.ResponseWriter, r *http.Request, store sessions.Store) (string, error) {
	sess, err := store.Get(r, SessionName)
	if err != nil {
		// A cookie signed with an old secret decodes to a fresh session
		sess, err = store.New(r, SessionName)
		if sess == nil {
			return "", fmt.Errorf("failed to open session: %w", err)
		}
	}

	if token, ok := sess.Values[ownerKey].(string); ok && token != "" {
		return token, nil
	}

	token := uuid.NewString()
	sess.Values[ownerKey] = token
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return token, nil
}

// LookupOwner returns the owner token carried by the request, if any.
func LookupOwner(r *http.Request, store sessions.Store) (string, bool) {
	sess, err := store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	token, ok := sess.Values[ownerKey].(string)
	return token, ok && token != ""
}
