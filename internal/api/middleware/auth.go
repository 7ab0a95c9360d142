package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userRolesKey contextKey = "userRoles"
)

// RoleOperador is the staff role allowed to drive lifecycle transitions.
const RoleOperador = "operador"

const (
	headerUserID    = "X-User-ID"
	headerUserRoles = "X-User-Roles"

	msgUnauthorized = "se requiere el encabezado X-User-ID"
	msgForbidden    = "acceso denegado"
)

// Auth requires a valid X-User-ID header and stores the caller identity
// in the request context. Roles arrive comma-separated in X-User-Roles;
// the gateway in front of this service fills both headers.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
		if err != nil || userID <= 0 {
			respondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)

		if raw := r.Header.Get(headerUserRoles); raw != "" {
			roles := strings.Split(raw, ",")
			for i := range roles {
				roles[i] = strings.TrimSpace(roles[i])
			}
			ctx = context.WithValue(ctx, userRolesKey, roles)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subrouter behind one role. Must run after Auth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HasRole(r.Context(), role) {
				respondError(w, http.StatusForbidden, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the authenticated caller id, 0 when absent.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// HasRole reports whether the caller carries the role.
func HasRole(ctx context.Context, role string) bool {
	roles, _ := ctx.Value(userRolesKey).([]string)
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
