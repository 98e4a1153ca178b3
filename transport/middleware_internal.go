package transport

import (
	"net/http"

	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/utils/errors"
)

// InternalMiddleware guards the cron/consumer endpoints with the shared
// static API key.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
