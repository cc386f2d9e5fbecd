package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/agro-community/internal/models"
)

// WeatherCache — минимальный контракт кэша погодных сводок.
type WeatherCache interface {
	// Get возвращает сводку для координат и признак её наличия в кэше.
	Get(ctx context.Context, lat, lon float64) (*models.WeatherReading, bool, error)
	// Set сохраняет сводку с TTL.
	Set(ctx context.Context, lat, lon float64, r *models.WeatherReading, ttl time.Duration) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "agro:weather:".
func NewRedisCache(redisURL, prefix string) (WeatherCache, error) {
	if prefix == "" {
		prefix = "agro:weather:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

// key округляет координаты до сотых (~1 км): соседние запросы попадают в одну запись.
func (c *redisCache) key(lat, lon float64) string {
	return c.prefix + strconv.FormatFloat(lat, 'f', 2, 64) + ":" + strconv.FormatFloat(lon, 'f', 2, 64)
}

// Храним как Redis Hash с полями: loc, temp, cond, hum, src, at (unix).
func (c *redisCache) Get(ctx context.Context, lat, lon float64) (*models.WeatherReading, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(lat, lon)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	temp, err := strconv.ParseFloat(m["temp"], 64)
	if err != nil {
		return nil, false, err
	}

	hum, err := strconv.ParseFloat(m["hum"], 64)
	if err != nil {
		return nil, false, err
	}

	at, err := strconv.ParseInt(m["at"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &models.WeatherReading{
		Location:    m["loc"],
		Temperature: temp,
		Condition:   m["cond"],
		Humidity:    hum,
		Source:      models.WeatherSource(m["src"]),
		FetchedAt:   time.Unix(at, 0).UTC(),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, lat, lon float64, r *models.WeatherReading, ttl time.Duration) error {
	kv := map[string]string{
		"loc":  r.Location,
		"temp": strconv.FormatFloat(r.Temperature, 'f', -1, 64),
		"cond": r.Condition,
		"hum":  strconv.FormatFloat(r.Humidity, 'f', -1, 64),
		"src":  string(r.Source),
		"at":   strconv.FormatInt(r.FetchedAt.Unix(), 10),
	}

	key := c.key(lat, lon)

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, kv)
	pipe.Expire(ctx, key, ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Close() error { return c.rdb.Close() }
