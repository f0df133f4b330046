package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/yudzxml/updates-service/internal/response"
)

// AdminKeyHeader carries the write secret on POST and DELETE requests.
const AdminKeyHeader = "x-admin-key"

// RequireReadKey returns middleware that gates reads behind the public key,
// passed as the "key" query parameter. A mismatch answers 400 before any
// handler or store call runs.
func RequireReadKey(publicKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Query().Get("key")
			if !equal(key, publicKey) {
				response.BadRequest(w, "Key tidak valid.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdminKey returns middleware that gates writes behind the admin
// secret, passed in the x-admin-key header. A mismatch answers 403 before any
// handler, storage, or store call runs.
func RequireAdminKey(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if !equal(key, adminKey) {
				response.Forbidden(w, "Forbidden: Admin key salah")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// equal compares two keys in constant time. An empty configured key never
// matches, so an unset secret fails closed instead of open.
func equal(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
