// service содержит бизнес-логику agro-community: учётные записи, ленту,
// маркетплейс, демонстрационное устройство, диагностику растений, погоду и медиа.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для конкурентного
//     использования при потокобезопасных зависимостях.
//   - Ошибки хранилища транслируются в сентинелы пакета; транспорт маппит их
//     в HTTP-статусы (см. internal/errors).
//   - Внешние сервисы (классификатор, погода, хостинг изображений) опциональны:
//     при их отсутствии или отказе операции деградируют до запасного результата.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/pribylovaa/agro-community/internal/cache"
	"github.com/pribylovaa/agro-community/internal/config"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/storage"
)

var (
	// ErrInvalidArgument — неверные входные параметры. HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность отсутствует. HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrForbidden — действие над чужой сущностью. HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials — неверная пара телефон/пароль или пользователь не найден. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен некорректен по формату или подписи. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")
	// ErrAlreadyExists — телефон уже занят. HTTP 409.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict — пост менялся конкурентно, попытки записи исчерпаны. HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCursor — битый/чужой page_token. HTTP 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInternal — внутренняя ошибка (хранилище/БД/контекст). HTTP 500.
	ErrInternal = errors.New("internal")
)

// Classifier — внешний классификатор изображений.
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]models.Detection, error)
}

// WeatherProvider — источник текущей погоды.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*models.WeatherReading, error)
}

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage storage.Storage
	cfg     *config.Config

	// Опциональные зависимости; nil включает запасное поведение.
	classifier Classifier
	weather    WeatherProvider
	wcache     cache.WeatherCache
	media      storage.MediaStorage

	now  func() time.Time
	intn func(n int) int
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
		intn:    rand.IntN,
	}
}

// SetClassifier устанавливает клиент классификатора (опционально).
func (s *Service) SetClassifier(c Classifier) {
	s.classifier = c
}

// SetWeatherProvider устанавливает источник живой погоды (опционально).
func (s *Service) SetWeatherProvider(p WeatherProvider) {
	s.weather = p
}

// SetWeatherCache устанавливает кэш погодных сводок (опционально).
func (s *Service) SetWeatherCache(c cache.WeatherCache) {
	s.wcache = c
}

// SetMediaStorage устанавливает хостинг изображений (опционально).
func (s *Service) SetMediaStorage(m storage.MediaStorage) {
	s.media = m
}

// storageErr транслирует ошибку хранилища в сентинел сервиса и логирует её.
// Отмена и дедлайн контекста пробрасываются как есть (499/504 на транспорте).
func storageErr(lg *slog.Logger, op, call string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		lg.Warn("not found", "call", call)
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, storage.ErrConflict):
		lg.Warn("conflict", "call", call)
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, storage.ErrInvalidCursor):
		lg.Warn("invalid cursor")
		return fmt.Errorf("%s: %w", op, ErrInvalidCursor)
	case errors.Is(err, storage.ErrAlreadyExists):
		lg.Warn("already exists", "call", call)
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		lg.Warn("request aborted", "call", call, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	default:
		lg.Error("storage error on "+call, "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
