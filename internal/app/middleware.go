package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

type contextKey string

const userIDContextKey = contextKey("userID")

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireUser extracts the authenticated user's id from the X-User-Id header
// placed there by the authentication gateway. Token issuance and verification
// happen upstream; this service only needs the opaque identifier.
func (app *Application) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-Id")
		if userID == "" {
			app.unauthorizedResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, domain.UserID(userID))
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (app *Application) contextGetUserID(r *http.Request) domain.UserID {
	userID, ok := r.Context().Value(userIDContextKey).(domain.UserID)
	if !ok {
		panic("missing user id from context")
	}

	return userID
}
