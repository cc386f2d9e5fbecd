// config реализует конфигурацию agro-community: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	DB         DBConfig         `yaml:"db"`
	Auth       AuthConfig       `yaml:"auth"`
	Limits     LimitsConfig     `yaml:"limits"`
	S3         S3Config         `yaml:"s3"`
	Media      MediaConfig      `yaml:"media"`
	Redis      RedisConfig      `yaml:"redis"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Weather    WeatherConfig    `yaml:"weather"`
	IoT        IoTConfig        `yaml:"iot"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки REST API.
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к MongoDB.
// Имя базы берётся из пути URI, по умолчанию "agro".
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// AuthConfig — параметры выпуска сессионных токенов и хэширования паролей.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
	Issuer     string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"agro-community"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// LimitsConfig — лимиты постраничной выдачи ленты.
type LimitsConfig struct {
	// page_size=0 -> берём Default; верхняя граница — Max.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"50"`
	Max     int32 `yaml:"max"     env:"MAX_LIMIT"     env-default:"300"`
}

// S3Config — хранилище изображений (MinIO/S3).
// При Enabled=false загрузка всегда деградирует до data URL.
type S3Config struct {
	Enabled       bool   `yaml:"enabled" env:"S3_ENABLED" env-default:"false"`
	Endpoint      string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	RootUser      string `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword  string `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket        string `yaml:"bucket" env:"S3_BUCKET"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// MediaConfig — ограничения на загружаемые изображения.
type MediaConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"MEDIA_MAX_SIZE_BYTES" env-default:"5242880"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"MEDIA_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp"`
}

// RedisConfig — кэш погодных сводок. Пустой URL отключает кэш.
type RedisConfig struct {
	URL        string        `yaml:"url" env:"REDIS_URL"`
	WeatherTTL time.Duration `yaml:"weather_ttl" env:"REDIS_WEATHER_TTL" env-default:"10m"`
}

// ClassifierConfig — внешний классификатор болезней растений.
// Пустой Token включает детерминированный fallback без сетевых вызовов.
type ClassifierConfig struct {
	URL     string        `yaml:"url" env:"HF_URL" env-default:"https://api-inference.huggingface.co/models"`
	Token   string        `yaml:"token" env:"HF_TOKEN"`
	Model   string        `yaml:"model" env:"HF_MODEL_ID" env-default:"latentlogic1/plant-disease-classifier-tf"`
	Timeout time.Duration `yaml:"timeout" env:"HF_TIMEOUT" env-default:"15s"`
}

// WeatherConfig — источник погоды. При Live=false отдаётся сгенерированная сводка.
type WeatherConfig struct {
	Live         bool          `yaml:"live" env:"WEATHER_LIVE" env-default:"false"`
	ForecastURL  string        `yaml:"forecast_url" env:"WEATHER_FORECAST_URL" env-default:"https://api.open-meteo.com"`
	GeocoderURL  string        `yaml:"geocoder_url" env:"WEATHER_GEOCODER_URL" env-default:"https://nominatim.openstreetmap.org"`
	DefaultLat   float64       `yaml:"default_lat" env:"WEATHER_DEFAULT_LAT" env-default:"24.8481"`
	DefaultLon   float64       `yaml:"default_lon" env:"WEATHER_DEFAULT_LON" env-default:"89.3730"`
	LocationName string        `yaml:"location_name" env:"WEATHER_LOCATION_NAME" env-default:"Bogura, BD"`
	Timeout      time.Duration `yaml:"timeout" env:"WEATHER_TIMEOUT" env-default:"5s"`
}

// IoTConfig — демонстрационное устройство полива.
// Пустой Owner отключает проверку владельца.
type IoTConfig struct {
	Owner    string `yaml:"owner" env:"IOT_OWNER" env-default:"iot-owner"`
	DeviceID string `yaml:"device_id" env:"IOT_DEVICE_ID" env-default:"pump-001"`
}

// TimeoutConfig — сервисные таймауты (общий дедлайн обработки запроса).
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	var (
		out *Config
		err error
	)

	switch {
	case path != "":
		out, err = readFile(path)
	case os.Getenv("CONFIG_PATH") != "":
		out, err = readFile(os.Getenv("CONFIG_PATH"))
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			out, err = readFile("local.yaml")
			break
		}

		if envErr := cleanenv.ReadEnv(&cfg); envErr != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", envErr)
		}
		out = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := out.validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Auth.TokenTTL < time.Minute {
		return fmt.Errorf("auth.token_ttl must be at least 1m")
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31]")
	}

	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}

	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}

	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}

	if c.Media.MaxSizeBytes <= 0 {
		return fmt.Errorf("media.max_size_bytes must be > 0")
	}

	if c.S3.Enabled && c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required when s3.enabled")
	}

	if c.IoT.DeviceID == "" {
		return fmt.Errorf("iot.device_id is required")
	}

	return nil
}
