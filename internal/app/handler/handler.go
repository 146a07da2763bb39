package handler

import (
	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/config"
	"heavyprofile/internal/app/dto"
	"heavyprofile/internal/app/geo"
	"heavyprofile/internal/app/repository"
	"heavyprofile/internal/app/storage"
	"heavyprofile/internal/app/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики REST API
type APIHandler struct {
	Store       repository.Store
	Notifier    *telegram.Notifier
	Images      *storage.ImageStorage
	Geocoder    *geo.Client
	Config      *config.Config
	AuthHandler *AuthHandler
}

func NewAPIHandler(store repository.Store, notifier *telegram.Notifier, images *storage.ImageStorage, geocoder *geo.Client, cfg *config.Config, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Store:       store,
		Notifier:    notifier,
		Images:      images,
		Geocoder:    geocoder,
		Config:      cfg,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// overrides читает карту правок. Ошибка стора не должна ронять страницу:
// логируем и продолжаем с пустой картой (посетитель видит базовый каталог).
func (h *APIHandler) overrides() catalog.OverridesMap {
	m, err := h.Store.ReadAll()
	if err != nil {
		logrus.Error("Error reading service overrides: ", err)
		return catalog.OverridesMap{}
	}
	return m
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
