package clients

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"resty.dev/v3"

	"github.com/pribylovaa/agro-community/internal/config"
	"github.com/pribylovaa/agro-community/internal/models"
)

// DefaultLocationName — имя точки, если геокодер ничего не нашёл.
const DefaultLocationName = "Local Area"

// Weather — клиент текущей погоды (open-meteo) с обратным геокодированием (nominatim).
type Weather struct {
	forecast *resty.Client
	geocoder *resty.Client
	now      func() time.Time
}

// NewWeather создаёт клиент погоды.
func NewWeather(cfg config.WeatherConfig, cc *ClientConfig) *Weather {
	return &Weather{
		forecast: newResty(strings.TrimRight(cfg.ForecastURL, "/"), cfg.Timeout, cc),
		geocoder: newResty(strings.TrimRight(cfg.GeocoderURL, "/"), cfg.Timeout, cc),
		now:      time.Now,
	}
}

func (w *Weather) Close() error {
	return errors.Join(w.forecast.Close(), w.geocoder.Close())
}

// https://open-meteo.com/en/docs
type forecast struct {
	Current *struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// https://nominatim.org/release-docs/latest/api/Reverse/
type place struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

// Current возвращает текущую погоду в точке. Ошибка геокодера не фатальна:
// имя точки деградирует до DefaultLocationName.
func (w *Weather) Current(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
	const op = "clients/weather/Current"

	res, err := r(ctx, w.forecast).
		SetQueryParams(map[string]string{
			"latitude":  formatCoord(lat),
			"longitude": formatCoord(lon),
			"current":   "temperature_2m,relative_humidity_2m,weather_code",
			"timezone":  "auto",
		}).
		SetResult(&forecast{}).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if res.IsError() {
		return nil, upstreamError(op, res)
	}

	fc, ok := res.Result().(*forecast)
	if !ok || fc == nil || fc.Current == nil {
		return nil, fmt.Errorf("%s: no current conditions: %w", op, ErrUpstream)
	}

	name, err := w.placeName(ctx, lat, lon)
	if err != nil {
		name = DefaultLocationName
	}

	return &models.WeatherReading{
		Location:    name,
		Temperature: math.Round(fc.Current.Temperature),
		Condition:   Condition(fc.Current.WeatherCode),
		Humidity:    fc.Current.Humidity,
		Source:      models.WeatherLive,
		FetchedAt:   w.now().UTC(),
	}, nil
}

func (w *Weather) placeName(ctx context.Context, lat, lon float64) (string, error) {
	const op = "clients/weather/placeName"

	res, err := r(ctx, w.geocoder).
		SetQueryParams(map[string]string{
			"format": "json",
			"lat":    formatCoord(lat),
			"lon":    formatCoord(lon),
			"zoom":   "10",
		}).
		SetResult(&place{}).
		Get("/reverse")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if res.IsError() {
		return "", upstreamError(op, res)
	}

	p, ok := res.Result().(*place)
	if !ok || p == nil {
		return DefaultLocationName, nil
	}

	a := p.Address
	name, _ := lo.Coalesce(a.City, a.Town, a.Village, a.County, a.State, DefaultLocationName)

	return name, nil
}

// Condition переводит WMO weather code в текстовое описание.
func Condition(code int) string {
	switch {
	case code == 0:
		return "Clear Sky"
	case code >= 1 && code <= 3:
		return "Partly Cloudy"
	case code >= 45 && code <= 48:
		return "Foggy"
	case code >= 51 && code <= 55:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 99:
		return "Storm"
	default:
		return "Cloudy"
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
