package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

func readBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// RequireToken gates the manual-trigger endpoints behind a bearer token.
// Unlike a dev-friendly allow-all, an empty configured token rejects every
// request: these endpoints fire real notifications and must never be open.
func RequireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := readBearer(r)
			if token == "" || given == "" ||
				subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
