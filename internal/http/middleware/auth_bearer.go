package middleware

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	logctx "github.com/pribylovaa/agro-community/internal/pkg/log"
	"github.com/pribylovaa/agro-community/internal/pkg/redact"
	"github.com/pribylovaa/agro-community/internal/service"
)

// TokenValidator проверяет сессионный токен.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (service.Identity, error)
}

// AuthBearer делает аутентификацию опциональной:
//   - нет заголовка или схема не Bearer — запрос идёт дальше анонимно;
//   - Bearer с валидным токеном — личность кладётся в контекст (service.WithIdentity);
//   - Bearer с невалидным/истёкшим токеном — 401 без вызова хендлера.
func AuthBearer(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				logctx.From(r.Context()).Warn("bearer token rejected",
					"token", redact.Token(),
					"err", err,
				)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := logctx.With(service.WithIdentity(r.Context(), id), "user_id", id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
