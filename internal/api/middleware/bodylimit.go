package middleware

import "net/http"

// MaxBodySize limits the request body to the given number of bytes. The API
// only accepts small JSON bodies (a video ID or a transcript's worth of
// text), so a tight cap prevents memory exhaustion from oversized payloads.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
