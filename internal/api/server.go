package api

import (
	"context"
	"fmt"

	"heavyprofile/internal/app/config"
	"heavyprofile/internal/app/dsn"
	"heavyprofile/internal/app/geo"
	"heavyprofile/internal/app/handler"
	"heavyprofile/internal/app/middleware"
	"heavyprofile/internal/app/redis"
	"heavyprofile/internal/app/repository"
	"heavyprofile/internal/app/storage"
	"heavyprofile/internal/app/telegram"
	"heavyprofile/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "heavyprofile/docs"
)

// StartServer собирает все зависимости и запускает HTTP-сервер
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Error loading config: %v", err)
	}

	store, err := newStore(cfg)
	if err != nil {
		logrus.Fatalf("Error initializing store: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// MinIO не обязателен: без него не работает только загрузка изображений
	var images *storage.ImageStorage
	if cfg.Minio.Endpoint != "" {
		images, err = storage.NewImageStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Warnf("MinIO unavailable, image upload disabled: %v", err)
			images = nil
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT is empty, image upload disabled")
	}

	notifier := telegram.NewNotifier(store, telegram.NewClient(), cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.IsProduction())

	authHandler := handler.NewAuthHandler(store, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(store, notifier, images, geo.NewClient(), cfg, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()

	// Фронтенд ходит с другого origin, поэтому CORS с Authorization
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	apiHandler.RegisterAPIRoutes(router, authMiddleware)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := pkg.NewApp(cfg, router, apiHandler)
	app.RunApp()
}

// newStore выбирает хранилище контента по конфигурации:
// JSON-файлы для локальной работы, PostgreSQL для размещённой версии
func newStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Mode {
	case "postgres":
		dsnStr := dsn.FromEnv()
		if dsnStr == "" {
			return nil, fmt.Errorf("storage mode is postgres, but DB_* variables are not set")
		}
		logrus.Info("Using PostgreSQL content store")
		return repository.NewPostgresStore(dsnStr)
	case "file", "":
		logrus.Infof("Using file content store in %s", cfg.Storage.DataDir)
		return repository.NewFileStore(cfg.Storage.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage mode: %s", cfg.Storage.Mode)
	}
}
