package session

import (
	"fmt"
	"net/http"

	"atelier-be/internal/utils"

	"github.com/google/uuid"
)

// CookieName carries the anonymous session id. Authenticated callers are
// identified through the access token instead.
const CookieName = "session_id"

const cookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// Key is the identifier cart lines and orders are stored under: the user id
// for authenticated requests, a generated session id otherwise.
type Key struct {
	Value         string
	UserID        *uint
	Authenticated bool
}

// Resolver derives owner keys from incoming requests. Secure controls the
// cookie's Secure flag (on in production).
type Resolver struct {
	Secure bool
}

// Resolve returns the owner key for the request. For anonymous callers a
// session id is read from the cookie, or generated and written back when
// absent. Authenticated callers never get a session cookie set.
func (s *Resolver) Resolve(w http.ResponseWriter, r *http.Request) Key {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return Key{
			Value:         fmt.Sprintf("user:%d", userID),
			UserID:        &userID,
			Authenticated: true,
		}
	}

	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return Key{Value: cookie.Value}
	}

	sessionID := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
	})

	return Key{Value: sessionID}
}

// AnonymousKey returns the session-cookie key of the request without
// generating one. Used by the login flow to merge the anonymous cart.
func AnonymousKey(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// UserKey is the owner key form used for authenticated carts and orders.
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}
