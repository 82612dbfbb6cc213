package middleware

import (
	"net/http"

	"github.com/wortle/wortle-server/internal/api/response"
)

// CORS echoes the configured allow-origin on every response and answers
// preflight OPTIONS requests unconditionally with success, before any
// body processing.
func CORS(allowOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Origin", allowOrigin)
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers",
				"X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version")

			if r.Method == http.MethodOptions {
				response.JSON(w, http.StatusOK, map[string]string{"message": "OK"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
