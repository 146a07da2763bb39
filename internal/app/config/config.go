package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	// Mode — режим работы ("production" или что угодно ещё).
	// От него зависит поведение форм при незаполненных реквизитах Telegram.
	Mode string
	// Storage — откуда читать контент админки: "file" (JSON-файлы)
	// или "postgres" (размещённая БД)
	Storage  StorageConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Minio    MinioConfig
	Telegram TelegramConfig
	// AdminLogin/AdminPassword — реквизиты админки по умолчанию,
	// пока в сторе не сохранён собственный пароль
	AdminLogin    string
	AdminPassword string
}

type StorageConfig struct {
	Mode    string
	DataDir string
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// TelegramConfig — реквизиты бота из окружения. Запасной вариант:
// сохранённые в админке значения имеют приоритет.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"
	envMinioBucket    = "MINIO_BUCKET"
	envMinioUseSSL    = "MINIO_USE_SSL"

	envTelegramBotToken = "TELEGRAM_BOT_TOKEN"
	envTelegramChatID   = "TELEGRAM_CHAT_ID"

	envAdminLogin    = "ADMIN_LOGIN"
	envAdminPassword = "ADMIN_PASSWORD"
	envJWTSecret     = "JWT_SECRET"
	envMode          = "APP_MODE"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Storage.Mode == "" {
		cfg.Storage.Mode = "file"
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}

	if mode := os.Getenv(envMode); mode != "" {
		cfg.Mode = mode
	}

	// JWT: секрет берём из окружения, остальное фиксировано
	secret := os.Getenv(envJWTSecret)
	if secret == "" {
		secret = "heavyprofile-dev-secret"
	}
	cfg.JWT = JWTConfig{
		Token:         secret,
		ExpiresIn:     24 * time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	// Redis из окружения
	cfg.Redis.Host = os.Getenv(envRedisHost)
	if portStr := os.Getenv(envRedisPort); portStr != "" {
		cfg.Redis.Port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// MinIO из окружения
	cfg.Minio.Endpoint = os.Getenv(envMinioEndpoint)
	cfg.Minio.AccessKey = os.Getenv(envMinioAccessKey)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecretKey)
	cfg.Minio.Bucket = os.Getenv(envMinioBucket)
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "heavyprofile-images"
	}
	cfg.Minio.UseSSL = os.Getenv(envMinioUseSSL) == "true"

	// Реквизиты Telegram из окружения (фоллбэк для конвейера заявок)
	cfg.Telegram.BotToken = os.Getenv(envTelegramBotToken)
	cfg.Telegram.ChatID = os.Getenv(envTelegramChatID)

	cfg.AdminLogin = os.Getenv(envAdminLogin)
	if cfg.AdminLogin == "" {
		cfg.AdminLogin = "admin"
	}
	cfg.AdminPassword = os.Getenv(envAdminPassword)
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}

	log.Info("config parsed")

	return cfg, nil
}

// IsProduction сообщает, работаем ли в боевом режиме
func (c *Config) IsProduction() bool {
	return c.Mode == "production"
}
