// Package middlewarectx содержит HTTP middleware сервиса заметок.
//
// Identity разбирает заголовок Authorization и, если токен действителен,
// кладёт личность пользователя в контекст запроса. Сам по себе он запрос
// не отклоняет: это делает RequireIdentity на защищённых маршрутах.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/postit/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey - ключ личности пользователя в контексте.
const IdentityKey Key = "identity"

const bearerPrefix = "Bearer "

// IdentityService восстанавливает пользователя по токену.
type IdentityService interface {
	Identify(ctx context.Context, token string) (*models.Identity, bool)
}

// WithIdentity возвращает контекст с личностью.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// IdentityFrom достаёт личность из контекста.
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*models.Identity)
	return identity, ok && identity != nil
}

// Identity возвращает middleware, которое прикрепляет личность к запросу
// при заголовке вида "Bearer <token>" с действительным токеном.
// Во всех остальных случаях запрос идёт дальше анонимным.
func Identity(service IdentityService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Identity"

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			identity, ok := service.Identify(r.Context(), strings.TrimPrefix(authHeader, bearerPrefix))
			if !ok {
				log.Debug("bearer token rejected",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
