package service

import (
	"context"
	"fmt"
	"math"

	"github.com/pribylovaa/agro-community/internal/metrics"
	"github.com/pribylovaa/agro-community/internal/models"
	"github.com/pribylovaa/agro-community/internal/pkg/log"
)

var mockConditions = []string{"Sunny", "Cloudy", "Rainy", "Stormy"}

// Weather возвращает текущую погоду для точки; nil-координаты заменяются
// координатами по умолчанию из конфига.
//
// Живая погода выключена или источник недоступен -> сгенерированная сводка.
// Ошибки кэша логируются и не влияют на ответ.
// Ошибки: ErrInvalidArgument (координаты вне диапазона).
func (s *Service) Weather(ctx context.Context, lat, lon *float64) (*models.WeatherReading, error) {
	const op = "service/weather/Weather"

	la, ln := s.cfg.Weather.DefaultLat, s.cfg.Weather.DefaultLon
	if lat != nil {
		la = *lat
	}
	if lon != nil {
		ln = *lon
	}

	lg := log.From(ctx).With("op", op, "lat", la, "lon", ln)

	if !validCoords(la, ln) {
		lg.Warn("invalid argument: coordinates out of range")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !s.cfg.Weather.Live || s.weather == nil {
		return s.mockWeather(), nil
	}

	if s.wcache != nil {
		cached, ok, err := s.wcache.Get(ctx, la, ln)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			lg.Warn("weather cache get failed", "err", err)
		case ok:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	reading, err := s.weather.Current(ctx, la, ln)
	if err != nil {
		metrics.Fallbacks.WithLabelValues("weather", "error").Inc()
		lg.Warn("weather provider failed, using mock", "err", err)
		return s.mockWeather(), nil
	}

	if s.wcache != nil {
		if err := s.wcache.Set(ctx, la, ln, reading, s.cfg.Redis.WeatherTTL); err != nil {
			lg.Warn("weather cache set failed", "err", err)
		}
	}

	return reading, nil
}

// validCoords — широта в [-90, 90], долгота в [-180, 180]; NaN и бесконечности отвергаются.
func validCoords(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// mockWeather — температура 20..34, влажность 40..79.
func (s *Service) mockWeather() *models.WeatherReading {
	return &models.WeatherReading{
		Location:    s.cfg.Weather.LocationName,
		Temperature: float64(s.intn(15) + 20),
		Condition:   mockConditions[s.intn(len(mockConditions))],
		Humidity:    float64(s.intn(40) + 40),
		Source:      models.WeatherMock,
		FetchedAt:   s.now().UTC(),
	}
}
