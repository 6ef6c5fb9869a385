package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier-be/internal/auth"
	"atelier-be/internal/session"
	"atelier-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSignup(t *testing.T) {
	body := `{"email":"ada@example.com","password":"s3cret-pass","firstName":"Ada","lastName":"Lovelace"}`

	t.Run("Success sets the access token cookie", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Register", mock.Anything, mock.MatchedBy(func(p user.RegisterParams) bool {
			return p.Email == "ada@example.com" && p.FirstName == "Ada"
		})).Return("signed-token", user.User{ID: 1, Email: "ada@example.com"}, nil)

		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)

		c := cookieByName(w, auth.CookieName)
		require.NotNil(t, c)
		assert.Equal(t, "signed-token", c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Register", mock.Anything, mock.Anything).
			Return("", user.User{}, user.ErrEmailExists)

		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Short password", func(t *testing.T) {
		env := newTestEnv()

		short := `{"email":"ada@example.com","password":"short","firstName":"Ada","lastName":"Lovelace"}`
		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(short)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Invalid email", func(t *testing.T) {
		env := newTestEnv()

		bad := `{"email":"not-an-email","password":"s3cret-pass","firstName":"Ada","lastName":"Lovelace"}`
		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(bad)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	body := `{"email":"ada@example.com","password":"s3cret-pass"}`

	t.Run("Success", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Login", mock.Anything, "ada@example.com", "s3cret-pass").
			Return("signed-token", user.User{ID: 7, Email: "ada@example.com"}, nil)

		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, w.Code)

		c := cookieByName(w, auth.CookieName)
		require.NotNil(t, c)
		assert.Equal(t, "signed-token", c.Value)
	})

	t.Run("Merges the anonymous cart into the user cart", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Login", mock.Anything, "ada@example.com", "s3cret-pass").
			Return("signed-token", user.User{ID: 7, Email: "ada@example.com"}, nil)
		env.carts.On("MergeInto", mock.Anything, "sess-1", "user:7").Return(nil)

		r := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(body)), "sess-1")
		w := env.do(r)

		assert.Equal(t, http.StatusOK, w.Code)
		env.carts.AssertExpectations(t)

		// The anonymous session cookie is dropped after a successful merge.
		c := cookieByName(w, session.CookieName)
		require.NotNil(t, c)
		assert.Equal(t, -1, c.MaxAge)
	})

	t.Run("No session cookie means no merge", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Login", mock.Anything, "ada@example.com", "s3cret-pass").
			Return("signed-token", user.User{ID: 7}, nil)

		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		env.carts.AssertNotCalled(t, "MergeInto", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Login", mock.Anything, "ada@example.com", "s3cret-pass").
			Return("", user.User{}, user.ErrInvalidCredentials)

		w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, cookieByName(w, auth.CookieName))
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv()

	w := env.do(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	c := cookieByName(w, auth.CookieName)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestProfile(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		env := newTestEnv()
		env.users.On("Profile", mock.Anything, uint(7)).
			Return(user.User{ID: 7, Email: "ada@example.com"}, nil)

		r := asUser(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil), 7, "ada@example.com")
		w := env.do(r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ada@example.com")
	})

	t.Run("Anonymous", func(t *testing.T) {
		env := newTestEnv()

		w := env.do(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env.users.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
	})
}
