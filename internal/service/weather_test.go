package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/mocks"
)

func newServiceWithWeather(t *testing.T) (*Service, *mocks.MockWeatherProvider, *mocks.MockWeatherCache, *gomock.Controller) {
	t.Helper()
	s, _, ctrl := newServiceWithMocks(t)
	mp := mocks.NewMockWeatherProvider(ctrl)
	mc := mocks.NewMockWeatherCache(ctrl)
	s.weather = mp
	s.wcache = mc
	return s, mp, mc, ctrl
}

func floatPtr(v float64) *float64 { return &v }

var liveReading = &models.WeatherReading{
	Location: "Dhaka", Temperature: 31, Condition: "Rain", Humidity: 80, Source: models.WeatherLive,
}

func TestService_Weather_Mock(t *testing.T) {
	s, _, _, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()
	s.cfg.Weather.Live = false

	got, err := s.Weather(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, &models.WeatherReading{
		Location: "Bogura, BD", Temperature: 20, Condition: "Sunny", Humidity: 40,
		Source: models.WeatherMock, FetchedAt: testNow,
	}, got)
}

func TestService_Weather_MockRanges(t *testing.T) {
	s, _, _, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()
	s.cfg.Weather.Live = false
	s.intn = func(n int) int { return n - 1 }

	got, err := s.Weather(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, 34.0, got.Temperature)
	require.Equal(t, 79.0, got.Humidity)
	require.Equal(t, "Stormy", got.Condition)
}

func TestService_Weather_InvalidCoords(t *testing.T) {
	s, _, _, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()

	_, err := s.Weather(context.Background(), floatPtr(91), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Weather(context.Background(), nil, floatPtr(-181))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// NaN и бесконечности не доходят ни до кэша, ни до провайдера (моки без ожиданий).
func TestService_Weather_NonFiniteCoords(t *testing.T) {
	s, _, _, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()

	cases := []struct {
		name     string
		lat, lon *float64
	}{
		{"nan_both", floatPtr(math.NaN()), floatPtr(math.NaN())},
		{"nan_lat", floatPtr(math.NaN()), nil},
		{"nan_lon", nil, floatPtr(math.NaN())},
		{"inf_lat", floatPtr(math.Inf(1)), nil},
		{"neg_inf_lon", nil, floatPtr(math.Inf(-1))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Weather(context.Background(), c.lat, c.lon)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_Weather_CacheHit(t *testing.T) {
	s, _, mc, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()

	mc.EXPECT().Get(gomock.Any(), 23.81, 90.41).Return(liveReading, true, nil)

	got, err := s.Weather(context.Background(), floatPtr(23.81), floatPtr(90.41))
	require.NoError(t, err)
	require.Equal(t, liveReading, got)
}

// Промах кэша: живая сводка по координатам по умолчанию кладётся в кэш с TTL.
func TestService_Weather_CacheMiss(t *testing.T) {
	s, mp, mc, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mc.EXPECT().Get(gomock.Any(), 24.8481, 89.3730).Return(nil, false, nil),
		mp.EXPECT().Current(gomock.Any(), 24.8481, 89.3730).Return(liveReading, nil),
		mc.EXPECT().Set(gomock.Any(), 24.8481, 89.3730, liveReading, 10*time.Minute).Return(nil),
	)

	got, err := s.Weather(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, liveReading, got)
}

// Ошибки кэша не влияют на ответ.
func TestService_Weather_CacheErrorsIgnored(t *testing.T) {
	s, mp, mc, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()

	mc.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
	mp.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).Return(liveReading, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := s.Weather(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, liveReading, got)
}

func TestService_Weather_ProviderFailureFallsBack(t *testing.T) {
	s, mp, mc, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()

	mc.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mp.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	got, err := s.Weather(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, models.WeatherMock, got.Source)
}

// Без кэша живой источник вызывается напрямую.
func TestService_Weather_NoCache(t *testing.T) {
	s, mp, _, ctrl := newServiceWithWeather(t)
	defer ctrl.Finish()
	s.wcache = nil

	mp.EXPECT().Current(gomock.Any(), gomock.Any(), gomock.Any()).Return(liveReading, nil)

	got, err := s.Weather(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, liveReading, got)
}
