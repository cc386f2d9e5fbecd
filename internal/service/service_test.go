package service

// Общие хелперы тестов сервисного слоя.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/storage/media.go -destination=./mocks/media.go -package=mocks
//   mockgen -source=./internal/service/service.go -destination=./mocks/service.go -package=mocks
//   mockgen -source=./internal/cache/cache.go -destination=./mocks/cache.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/agro-community/internal/config"
	"github.com/pribylovaa/agro-community/internal/storage"
	"github.com/pribylovaa/agro-community/mocks"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			Issuer:     "agro-community",
			BcryptCost: 4,
		},
		Limits: config.LimitsConfig{Default: 50, Max: 300},
		Media: config.MediaConfig{
			MaxSizeBytes:        16,
			AllowedContentTypes: []string{"image/jpeg", "image/png"},
		},
		Redis: config.RedisConfig{WeatherTTL: 10 * time.Minute},
		Classifier: config.ClassifierConfig{
			Token: "hf-token",
		},
		Weather: config.WeatherConfig{
			Live:         true,
			DefaultLat:   24.8481,
			DefaultLon:   89.3730,
			LocationName: "Bogura, BD",
		},
		IoT: config.IoTConfig{Owner: "iot-owner", DeviceID: "pump-001"},
	}
}

// newServiceWithMocks — поднимает сервис с моками стораджа, фиксированным временем
// и детерминированным генератором случайных чисел.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	s := &Service{
		storage: ms,
		cfg:     testConfig(),
		now:     func() time.Time { return testNow },
		intn:    func(int) int { return 0 },
	}
	return s, ms, ctrl
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Маппинг ошибок хранилища в сентинелы сервиса; контекстные ошибки проходят как есть.
func TestStorageErr_Mapping(t *testing.T) {
	lg := discardLogger()

	cases := []struct {
		in   error
		want error
	}{
		{storage.ErrNotFound, ErrNotFound},
		{storage.ErrConflict, ErrConflict},
		{storage.ErrInvalidCursor, ErrInvalidCursor},
		{storage.ErrAlreadyExists, ErrAlreadyExists},
		{context.Canceled, context.Canceled},
		{context.DeadlineExceeded, context.DeadlineExceeded},
		{errors.New("boom"), ErrInternal},
	}

	for _, c := range cases {
		require.ErrorIs(t, storageErr(lg, "op", "Call", c.in), c.want)
	}
}
