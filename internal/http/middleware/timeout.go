package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/agro-community/internal/errors"
	logctx "github.com/pribylovaa/agro-community/internal/pkg/log"
)

// Timeout навешивает общий дедлайн обработки запроса, если его ещё нет.
// Значение <=0 делает мидлвар no-op.
//
// Хендлеры сами транслируют ошибку контекста в ответ. Если же хендлер
// вернулся по истечении дедлайна, ничего не записав, клиент получает
// 504 в едином формате ошибок.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			sw := newStatusWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(sw, r)

			if sw.written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}

			logctx.From(ctx).Warn("request_deadline_exceeded",
				"path", r.URL.Path,
				"timeout", d.String(),
			)
			apierrors.WriteError(sw, r, ctx.Err())
		})
	}
}
