package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/nutrivitta/storefront/application/user"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/utils/errors"
)

// AuthMiddleware validates JWT sessions on account routes. The storefront is
// guest-first: cart, catalog, shipping and checkout run on the guest session
// id alone, so only account routes demand a token. Internal routes carry
// their own shared-secret guard and the webhook its own signature check.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isPublicPath(path string) bool {
	publicPrefixes := []string{
		"/swagger/",
		"/internal/",
		"/products",
		"/cart/",
		"/checkout",
		"/shipping/",
		"/orders/",
		"/webhooks/",
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	switch path {
	case "/session", "/login", "/register":
		return true
	}

	return false
}
