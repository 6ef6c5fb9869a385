package httpapi

import (
	"errors"
	"net/http"
	"net/mail"

	"atelier-be/internal/auth"
	"atelier-be/internal/logger"
	"atelier-be/internal/session"
	"atelier-be/internal/transport"
	"atelier-be/internal/user"
	"atelier-be/internal/utils"

	"go.uber.org/zap"
)

type signupRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User user.User `json:"user"`
}

const minPasswordLen = 8

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		transport.RespondError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < minPasswordLen {
		transport.RespondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		transport.RespondError(w, http.StatusBadRequest, "firstName and lastName are required")
		return
	}

	token, u, err := h.users.Register(r.Context(), user.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			transport.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		transport.RespondInternal(w, r, err)
		return
	}

	auth.SetSessionCookie(w, token, h.secureCookies)
	h.adoptAnonymousCart(w, r, u.ID)

	transport.RespondJSON(w, http.StatusCreated, authResponse{User: u})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := transport.DecodeJSON(r, &req); err != nil {
		transport.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			transport.RespondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		transport.RespondInternal(w, r, err)
		return
	}

	auth.SetSessionCookie(w, token, h.secureCookies)
	h.adoptAnonymousCart(w, r, u.ID)

	transport.RespondJSON(w, http.StatusOK, authResponse{User: u})
}

// adoptAnonymousCart folds the request's anonymous cart, if any, into the
// user's cart and drops the session cookie. A merge failure is logged rather
// than failing the login; the anonymous cart stays reachable under its cookie.
func (h *Handler) adoptAnonymousCart(w http.ResponseWriter, r *http.Request, userID uint) {
	anonKey, ok := session.AnonymousKey(r)
	if !ok {
		return
	}

	if err := h.carts.MergeInto(r.Context(), anonKey, session.UserKey(userID)); err != nil {
		logger.FromCtx(r.Context()).Error("cart merge on login failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	transport.RespondJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		transport.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			transport.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		transport.RespondInternal(w, r, err)
		return
	}

	transport.RespondJSON(w, http.StatusOK, authResponse{User: u})
}
