package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/amigomontador/backend/pkg/utils"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserTypeKey ContextKey = "userType"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserTypeKey, claims.UserType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUserType guards routes reserved for one role. Must run after
// AuthMiddleware.
func RequireUserType(userType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got, _ := r.Context().Value(UserTypeKey).(string); got != userType {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden for this user type")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
