package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/agro-community/internal/models"
)

func newTestCache(t *testing.T) (WeatherCache, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)

	c, err := NewRedisCache("redis://"+s.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, s
}

func TestWeatherCache_MissThenHit(t *testing.T) {
	c, s := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, 24.8481, 89.3730)
	require.NoError(t, err)
	require.False(t, ok)

	in := &models.WeatherReading{
		Location:    "Bogura",
		Temperature: 27.4,
		Condition:   "Cloudy",
		Humidity:    63,
		Source:      models.WeatherLive,
		FetchedAt:   time.Unix(1735689600, 0).UTC(),
	}
	require.NoError(t, c.Set(ctx, 24.8481, 89.3730, in, 10*time.Minute))

	require.True(t, s.Exists("agro:weather:24.85:89.37"))
	require.Equal(t, 10*time.Minute, s.TTL("agro:weather:24.85:89.37"))

	// Соседняя точка в пределах округления попадает в ту же запись.
	got, ok, err := c.Get(ctx, 24.851, 89.369)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, in, got)
}

func TestWeatherCache_Expires(t *testing.T) {
	c, s := newTestCache(t)
	ctx := context.Background()

	r := &models.WeatherReading{Location: "X", Condition: "Sunny", Source: models.WeatherLive, FetchedAt: time.Now()}
	require.NoError(t, c.Set(ctx, 1, 2, r, time.Minute))

	s.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, 1, 2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWeatherCache_CorruptEntry(t *testing.T) {
	c, s := newTestCache(t)

	s.HSet("agro:weather:1.00:2.00", "temp", "warm")

	_, ok, err := c.Get(context.Background(), 1, 2)
	require.Error(t, err)
	require.False(t, ok)
}

func TestNewRedisCache_Errors(t *testing.T) {
	_, err := NewRedisCache("not-a-url", "")
	require.Error(t, err)

	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err = NewRedisCache("redis://"+addr, "")
	require.Error(t, err)
}
