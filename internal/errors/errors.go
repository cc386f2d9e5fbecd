// errors стандартизирует ответы об ошибках HTTP-слоя agro-community.
// На вход он принимает ошибку сервисного слоя (сентинелы internal/service
// или ошибку контекста), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/agro-community/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// table — порядок важен: первое совпадение по errors.Is.
var table = []mapping{
	{service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument", "invalid argument"},
	{service.ErrInvalidCursor, http.StatusBadRequest, "invalid_argument", "invalid page token"},
	{service.ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{service.ErrAlreadyExists, http.StatusConflict, "already_exists", "already exists"},
	{service.ErrConflict, http.StatusConflict, "conflict", "concurrent modification, retry"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "unauthenticated", "invalid credentials"},
	{service.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated", "token expired"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated", "invalid token"},
	{service.ErrForbidden, http.StatusForbidden, "permission_denied", "permission denied"},
	{context.Canceled, StatusClientClosedRequest, "canceled", "canceled"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"},
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - err — известный сентинел - маппим по table;
//   - прочее (включая service.ErrInternal) - 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, m := range table {
			if errors.Is(err, m.target) {
				return m.status, ErrorResponse{
					Error: APIError{
						Code:    m.code,
						Message: m.message,
					},
				}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
