package auth

import (
	"context"
	"net/http"
	"strings"

	"parcelhub/internal/entities"
	"parcelhub/pkg/logger"
)

type contextKey struct{}

var principalKey contextKey

// PrincipalEmail возвращает подтвержденный email из контекста запроса.
func PrincipalEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(principalKey).(string)
	return email, ok
}

// WithPrincipal кладет подтвержденный email в контекст.
func WithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, principalKey, email)
}

// VerifyToken: проверка bearer-токена до любых побочных эффектов.
// Подтвержденный email кладется в контекст для последующих проверок.
func VerifyToken(log handlerLogger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			email, err := verifier.VerifyToken(tokenString)
			if err != nil {
				log.With(
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("token verification failed")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), email)))
		})
	}
}

// VerifyAdmin навешивается после VerifyToken: роль принципала
// сверяется с хранилищем пользователей.
func VerifyAdmin(log handlerLogger, roles RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := PrincipalEmail(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := roles.GetByEmail(r.Context(), email)
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			if user.Role != entities.RoleAdmin {
				log.With(
					logger.NewField("email", email),
					logger.NewField("role", user.Role.String()),
				).Warn("admin access denied")
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
