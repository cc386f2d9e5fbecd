// Package middleware — цепочка net/http-мидлваров REST API agro-community:
// восстановление после паник, request id, логирование, метрики,
// необязательная bearer-аутентификация и общий дедлайн запроса.
package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар; совместим с chi.Router.Use.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления.
// Используется там, где нет chi-роутера (тесты, служебные эндпойнты).
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}

// statusWriter перехватывает статус и размер ответа для логов, метрик и таймаута.
// Повторный WriteHeader не доходит до исходного writer: первый статус окончательный.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status != 0 {
		return
	}

	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

// Unwrap отдаёт исходный writer для http.ResponseController (Flush, дедлайны записи).
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// written сообщает, начат ли уже ответ клиенту.
func (w *statusWriter) written() bool {
	return w.status != 0
}
