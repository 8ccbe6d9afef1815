package middleware

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/2beens/workouttracker/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowedHeaders = "Content-Type"
)

// CompileOrigins turns origin patterns from the config into regular expressions.
func CompileOrigins(patterns []string) ([]*regexp.Regexp, error) {
	origins := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile cors origin [%s]: %w", p, err)
		}
		origins = append(origins, re)
	}
	return origins, nil
}

// Cors allows browser requests from origins matching one of allowedOrigins.
// Requests without an Origin header (curl, server to server) pass through untouched.
// Preflight requests from allowed origins are answered here with 200.
func Cors(allowedOrigins []*regexp.Regexp) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !originAllowed(allowedOrigins, origin) {
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				pkg.WriteJSONError(w, "origin not allowed", http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowedOrigins []*regexp.Regexp, origin string) bool {
	for _, re := range allowedOrigins {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}
