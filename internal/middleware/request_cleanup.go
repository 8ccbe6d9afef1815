package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes caps how much unread body is discarded after the handler returns.
// Anything larger is left for the server to deal with when the connection is closed.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards up to maxDrainBytes of request body the handler did not read,
// then closes the body.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			n, err := io.CopyN(io.Discard, r.Body, maxDrainBytes)
			if err == nil {
				log.Tracef("%s %s: left more than %d unread body bytes", r.Method, r.URL.Path, n)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("%s %s: close request body: %s", r.Method, r.URL.Path, err)
			}
		})
	}
}
