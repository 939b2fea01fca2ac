package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"time"

	"storefront/cart"
)

// RetrieveCart returns the cart owned by the request's session, creating the
// session cookie and an empty cart if the user doesn't have one yet.
func RetrieveCart(w http.ResponseWriter, r *http.Request, carts *cart.Registry) *cart.Cart {
	session_id := BeginSession(w, r)
	return carts.Get(session_id)
}

// BeginSession creates a new user session ID and stores it in the user's
// cookie if the user doesn't have one yet.
func BeginSession(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie("session")
	// Along with checking if cookie exists, make sure the length is valid
	if err != nil || len(cookie.Value) != 44 {
		// Create cookie and attach it to the server response
		session_id := SessionId()
		setSessionCookie(w, session_id)
		log.Printf("New session cookie created: %s\n", session_id)
		return session_id
	}
	return cookie.Value
}

// Create and set the user's cookie in the http response
func setSessionCookie(w http.ResponseWriter, session_id string) {
	expiration := time.Now().Add(7 * 24 * time.Hour)
	cookie := http.Cookie{
		Name:     "session",
		Value:    session_id,
		Expires:  expiration,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, &cookie)
}

// Generate a random session id
func SessionId() string {
	b := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}
