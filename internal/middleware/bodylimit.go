package middleware

import "net/http"

// BodyLimit caps request bodies at maxBytes. Deposit screenshots arrive
// base64-inlined, so the cap is generous.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
