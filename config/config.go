package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	LogLevel    string
	HTTP        HTTPConfig
	API         APIConfig
	Schedule    ScheduleConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Auth        AuthConfig
	S3          S3Config
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderMB    int
	AllowedOrigins []string
}

// APIConfig points at the clinic backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	Token   string
}

type ScheduleConfig struct {
	// ReferenceDate pins "today"; zero means the real current date.
	ReferenceDate      time.Time
	DefaultView        string
	GuardedTransitions bool
	ViewIdleTTL        time.Duration
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
	MigrationsDir      string
}

func (c PostgresConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type JWTConfig struct {
	SigningKey     string
	AccessTokenTTL time.Duration
}

type AuthConfig struct {
	Enabled bool
	// Users maps login to argon2 password hash.
	Users map[string]string
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
}

func (c S3Config) Enabled() bool {
	return c.Endpoint != ""
}

// NewConfig reads the environment, loading .env first when present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "15s"))
	if err != nil {
		return nil, err
	}

	viewIdleTTL, err := time.ParseDuration(getEnv("SCHEDULE_VIEW_IDLE_TTL", "30m"))
	if err != nil {
		return nil, err
	}

	var referenceDate time.Time
	if value := getEnv("SCHEDULE_REFERENCE_DATE", ""); value != "" {
		referenceDate, err = time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			return nil, fmt.Errorf("SCHEDULE_REFERENCE_DATE: %w", err)
		}
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(getEnv("DIRECTORY_CACHE_TTL", "5m"))
	if err != nil {
		return nil, err
	}

	jwtAccessTokenTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TOKEN_TTL", "12h"))
	if err != nil {
		return nil, err
	}

	users, err := parseUsers(getEnv("AUTH_USERS", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "odoonto"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Port:           getEnv("HTTP_PORT", "8081"),
			ReadTimeout:    httpReadTimeout,
			WriteTimeout:   httpWriteTimeout,
			MaxHeaderMB:    getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: apiTimeout,
			Token:   getEnv("API_TOKEN", ""),
		},
		Schedule: ScheduleConfig{
			ReferenceDate:      referenceDate,
			DefaultView:        getEnv("SCHEDULE_DEFAULT_VIEW", "day"),
			GuardedTransitions: getEnvAsBool("SCHEDULE_GUARDED_TRANSITIONS", false),
			ViewIdleTTL:        viewIdleTTL,
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", ""),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "odoonto"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 2),
			MaxLifetime:        postgresMaxLifetime,
			MigrationsDir:      getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      cacheTTL,
		},
		JWT: JWTConfig{
			SigningKey:     getEnv("JWT_SIGNING_KEY", "your_secret_key"),
			AccessTokenTTL: jwtAccessTokenTTL,
		},
		Auth: AuthConfig{
			Enabled: getEnvAsBool("AUTH_ENABLED", false),
			Users:   users,
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "odoonto-exports"),
			UseSSL:          getEnv("S3_USE_SSL", "true") == "true",
		},
	}, nil
}

// parseUsers reads "login:hash;login:hash". The login ends at the first colon.
func parseUsers(value string) (map[string]string, error) {
	users := make(map[string]string)
	for _, pair := range strings.Split(value, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		login, hash, ok := strings.Cut(pair, ":")
		if !ok || login == "" || hash == "" {
			return nil, fmt.Errorf("AUTH_USERS: entrada no válida %q", pair)
		}
		users[login] = hash
	}
	return users, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
