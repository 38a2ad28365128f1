package httpapi

import (
	"net/http"
	"strings"

	"orderiq/order-svc/internal/domain"
	"orderiq/order-svc/internal/session"
)

// principalFrom resolves the request's principal. The session store is the
// source of truth; a bearer token alone yields a minimal principal carrying
// just identity and role.
func (h *Handler) principalFrom(r *http.Request) *domain.Principal {
	current := h.Sessions.Current()

	auth := r.Header.Get("Authorization")
	token, hasToken := strings.CutPrefix(auth, "Bearer ")
	if !hasToken {
		return current
	}

	claims, err := session.ParseToken(token, h.JWTSecret)
	if err != nil {
		return nil
	}
	if current != nil && current.ID == claims.UserID {
		return current
	}
	return &domain.Principal{ID: claims.UserID, Role: claims.Role}
}

// requireRole gates a handler to one role. Unauthenticated requests get 401
// with a login-required signal, wrong-role requests get 403.
func (h *Handler) requireRole(role domain.Role, next func(http.ResponseWriter, *http.Request, *domain.Principal)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.principalFrom(r)
		if p == nil {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		if p.Role != role {
			writeError(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r, p)
	}
}

// requireAuth gates a handler to any authenticated principal.
func (h *Handler) requireAuth(next func(http.ResponseWriter, *http.Request, *domain.Principal)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := h.principalFrom(r)
		if p == nil {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		next(w, r, p)
	}
}
