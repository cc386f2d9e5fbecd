package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pribylovaa/agro-community/internal/service"
)

// maxBodyBytes — верхняя граница тела запроса (data URL изображения плюс поля).
const maxBodyBytes = 12 << 20

// Handlers агрегирует зависимости (сервисный слой и валидатор тел запросов).
type Handlers struct {
	svc      *service.Service
	validate *validator.Validate
}

func New(svc *service.Service) *Handlers {
	return &Handlers{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// messageResponse — ответ без сущности.
type messageResponse struct {
	Message string `json:"message"`
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля и хвост после объекта.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(value); err != nil {
		return err
	}

	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}

	return nil
}

// decodeOptional — как decodeStrict, но пустое тело допустимо.
func decodeOptional(r *http.Request, value any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	if err := decodeStrict(r, value); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// decodeValid — decodeStrict + проверка тегов validate.
func (h *Handlers) decodeValid(r *http.Request, value any) error {
	if err := decodeStrict(r, value); err != nil {
		return invalidArgument(err)
	}

	if err := h.validate.Struct(value); err != nil {
		return invalidArgument(err)
	}

	return nil
}

// invalidArgument — локальная ошибка парсинга/валидации -> service.ErrInvalidArgument.
func invalidArgument(cause error) error {
	return fmt.Errorf("%w: %v", service.ErrInvalidArgument, cause)
}

// requesterFrom — имя запрашивающего: первое непустое поле тела, иначе query-параметр user.
func requesterFrom(r *http.Request, fromBody ...string) string {
	for _, v := range fromBody {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return strings.TrimSpace(r.URL.Query().Get("user"))
}

// queryFloat — необязательный числовой query-параметр.
func queryFloat(r *http.Request, key string) (*float64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, invalidArgument(fmt.Errorf("%s: %w", key, err))
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalidArgument(fmt.Errorf("%s: not a finite number", key))
	}

	return &f, nil
}
