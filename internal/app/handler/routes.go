package handler

import (
	"heavyprofile/internal/app/middleware"
	"heavyprofile/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Каталог (публичные эндпоинты) ============
	api.GET("/categories", h.GetCategories)        // GET список категорий
	api.GET("/categories/:slug", h.GetCategory)    // GET категория с услугами
	api.GET("/services", h.GetServices)            // GET список услуг с фильтрацией
	api.GET("/services/:category/:slug", h.GetService) // GET одна услуга

	// ============ Заявки (публичный эндпоинт) ============
	api.POST("/lead", h.SubmitLead) // POST заявка с формы

	// ============ Карта контактов ============
	api.GET("/maps/search", h.SearchMaps) // GET подсказки адресов

	// ============ Конфигурация страниц ============
	api.GET("/home-admin", h.GetHomeConfig)                                               // GET главная страница
	api.PUT("/home-admin", authMiddleware.WithAuthCheck(role.Admin), h.UpdateHomeConfig)  // PUT главная страница
	api.GET("/consent-config", h.GetConsentConfig)                                        // GET чекбокс согласия
	api.GET("/contacts-config", h.GetContactsConfig)                                      // GET контакты компании

	// ============ Админка ============
	admin := api.Group("/admin")
	{
		// Чтение публичное: фронтенд собирает из этих данных страницы каталога
		admin.GET("/services-overrides", h.GetServiceOverrides) // GET карта правок
		admin.GET("/page-texts", h.GetPageText)                 // GET текст по ключу

		// Только для администратора
		admin.POST("/page-texts", authMiddleware.WithAuthCheck(role.Admin), h.UpdatePageText)                // POST сохранение текста
		admin.GET("/services/:id", authMiddleware.WithAuthCheck(role.Admin), h.GetAdminService)              // GET услуга для формы
		admin.PUT("/services/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateService)                // PUT правка услуги
		admin.DELETE("/services/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteService)             // DELETE удаление услуги
		admin.GET("/telegram-settings", authMiddleware.WithAuthCheck(role.Admin), h.GetTelegramSettings)     // GET реквизиты бота
		admin.PUT("/telegram-settings", authMiddleware.WithAuthCheck(role.Admin), h.UpdateTelegramSettings)  // PUT реквизиты бота
		admin.GET("/current-username", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.CurrentUsername) // GET логин для шапки админки
	}

	// ============ Загрузка изображений ============
	api.POST("/upload", authMiddleware.WithAuthCheck(role.Admin), h.UploadImage)
	api.DELETE("/upload/:filename", authMiddleware.WithAuthCheck(role.Admin), h.DeleteUploadedImage)

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичный эндпоинт
		auth.POST("/login", h.AuthHandler.LoginAdmin) // POST аутентификация JWT

		// Защищённые эндпоинты
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.LogoutAdmin)
		auth.POST("/change-password", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.ChangePassword)
		auth.POST("/change-login", authMiddleware.WithAuthCheck(role.Admin), h.AuthHandler.ChangeLogin)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
