package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// JWTConfig : параметры подписи access токенов и время жизни refresh токенов.
// SecretKey должен быть не короче 32 байт (256 бит), это проверяется
// при старте приложения, а не при обработке запроса.
type JWTConfig struct {
	SecretKey       string `yaml:"secret_key"`
	Issuer          string `yaml:"issuer"`
	Audience        string `yaml:"audience"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

// WebhookConfig : адрес, на который отправляется уведомление
// при обнаружении повторного использования ротированного refresh токена
type WebhookConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

type TTL struct {
	// время жизни записей в Redis и presigned URL в секундах
	S3AndRedis int `yaml:"s3_and_redis"`
}
