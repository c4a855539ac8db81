package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Webhook        WebhookConfig  `yaml:"webhook"`
	TTL            TTL            `yaml:"TTL"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет конфигурацию при старте приложения.
// Невалидный ключ подписи или время жизни токенов — фатальная ошибка
// конфигурации, а не ошибка времени выполнения.
func (cfg *AppConfig) Validate() error {
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key должен быть не короче 32 байт, получено %d", len(cfg.JWT.SecretKey))
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer не задан")
	}
	if cfg.JWT.Audience == "" {
		return fmt.Errorf("jwt.audience не задан")
	}
	if _, err := time.ParseDuration(cfg.JWT.AccessTokenTTL); err != nil {
		return fmt.Errorf("jwt.access_token_ttl: %w", err)
	}
	if _, err := time.ParseDuration(cfg.JWT.RefreshTokenTTL); err != nil {
		return fmt.Errorf("jwt.refresh_token_ttl: %w", err)
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
