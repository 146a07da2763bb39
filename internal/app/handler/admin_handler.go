package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/dto"
	"heavyprofile/internal/app/pages"
	"heavyprofile/internal/app/storage"
	"heavyprofile/internal/app/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН АДМИНКА ============

// GetPageText отдаёт текст страницы по ключу
// @Summary Текст страницы
// @Description Возвращает сохранённый админкой текст. Чтение публичное: значения нужны страницам сайта.
// @Tags Admin
// @Produce json
// @Param key query string true "Ключ текста"
// @Success 200 {object} dto.PageTextResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/page-texts [get]
func (h *APIHandler) GetPageText(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		h.errorResponse(c, http.StatusBadRequest, "Не указан ключ")
		return
	}

	text, err := h.Store.Read(key)
	if err != nil {
		// Недоступный стор не должен ломать страницу — отдаём пустой текст
		logrus.Error("Error reading page text: ", err)
		text = ""
	}

	c.JSON(http.StatusOK, dto.PageTextResponse{Key: key, Text: text})
}

// UpdatePageText сохраняет текст страницы
// @Summary Сохранение текста страницы
// @Description Записывает текст или JSON-блоб по ключу (только для администратора)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePageTextRequest true "Ключ и текст"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/page-texts [post]
func (h *APIHandler) UpdatePageText(c *gin.Context) {
	var request dto.UpdatePageTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные")
		return
	}

	if err := h.Store.Write(request.Key, request.Text); err != nil {
		logrus.Error("Error writing page text: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения текста")
		return
	}

	h.successResponse(c, http.StatusOK, "текст сохранён", nil)
}

// GetServiceOverrides отдаёт карту правок услуг целиком
// @Summary Правки услуг
// @Description Возвращает все правки каталога. Чтение публичное: карта нужна страницам каталога.
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]catalog.ServiceOverride
// @Router /api/admin/services-overrides [get]
func (h *APIHandler) GetServiceOverrides(c *gin.Context) {
	c.JSON(http.StatusOK, h.overrides())
}

// GetAdminService возвращает эффективную услугу для формы редактирования
// @Summary Услуга для редактирования
// @Description Возвращает эффективную услугу по её ID (только для администратора)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Success 200 {object} catalog.Service
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/services/{id} [get]
func (h *APIHandler) GetAdminService(c *gin.Context) {
	service := catalog.ServiceByID(c.Param("id"), h.overrides())
	if service == nil {
		h.errorResponse(c, http.StatusNotFound, "Услуга не найдена")
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService сохраняет правку услуги
// @Summary Правка услуги
// @Description Накладывает переданные поля поверх сохранённой правки и снимает флаг удаления
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/services/{id} [put]
func (h *APIHandler) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")
	if serviceID == "" {
		h.errorResponse(c, http.StatusBadRequest, "Не указан ID услуги")
		return
	}

	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные")
		return
	}

	patch := catalog.ServiceOverride{
		Slug:            request.Slug,
		Title:           request.Title,
		Description:     request.Description,
		Price:           request.Price,
		CategoryID:      request.CategoryID,
		FullDescription: request.FullDescription,
		SeoText:         request.SeoText,
		Images:          request.Images,
		PricingTable:    request.PricingTable,
		ShowOrderForm:   request.ShowOrderForm,
	}

	overrides := h.overrides()
	overrides = catalog.Upsert(overrides, serviceID, patch)

	if err := h.Store.WriteAll(overrides); err != nil {
		logrus.Error("Error writing service overrides: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения услуги")
		return
	}

	h.successResponse(c, http.StatusOK, "услуга сохранена", nil)
}

// DeleteService удаляет услугу из каталога
// @Summary Удаление услуги
// @Description Помечает правку удалённой; пустая служебная запись вычищается сразу
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/services/{id} [delete]
func (h *APIHandler) DeleteService(c *gin.Context) {
	overrides := h.overrides()
	overrides = catalog.Delete(overrides, c.Param("id"))

	if err := h.Store.WriteAll(overrides); err != nil {
		logrus.Error("Error writing service overrides: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления услуги")
		return
	}

	h.successResponse(c, http.StatusOK, "услуга удалена", nil)
}

// GetTelegramSettings отдаёт реквизиты Telegram-бота
// @Summary Настройки Telegram
// @Description Возвращает сохранённые реквизиты бота (только для администратора)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TelegramSettingsResponse
// @Router /api/admin/telegram-settings [get]
func (h *APIHandler) GetTelegramSettings(c *gin.Context) {
	settings, err := h.Store.TelegramSettings()
	if err != nil {
		logrus.Error("Error reading telegram settings: ", err)
	}
	response := dto.TelegramSettingsResponse{}
	if settings != nil {
		response.BotToken = settings.BotToken
		response.ChatID = settings.ChatID
	}
	c.JSON(http.StatusOK, response)
}

// UpdateTelegramSettings сохраняет реквизиты Telegram-бота
// @Summary Сохранение настроек Telegram
// @Description Записывает токен бота и ID чата для уведомлений о заявках
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TelegramSettingsRequest true "Реквизиты бота"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/telegram-settings [put]
func (h *APIHandler) UpdateTelegramSettings(c *gin.Context) {
	var request dto.TelegramSettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные")
		return
	}

	err := h.Store.UpdateTelegramSettings(telegram.Settings{
		BotToken: request.BotToken,
		ChatID:   request.ChatID,
	})
	if err != nil {
		logrus.Error("Error writing telegram settings: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения настроек")
		return
	}

	h.successResponse(c, http.StatusOK, "настройки сохранены", nil)
}

// GetHomeConfig отдаёт конфигурацию главной страницы
// @Summary Конфигурация главной
// @Description Возвращает блоки, тексты и карточки главной страницы с дефолтами
// @Tags Pages
// @Produce json
// @Success 200 {object} pages.HomeConfig
// @Router /api/home-admin [get]
func (h *APIHandler) GetHomeConfig(c *gin.Context) {
	raw, err := h.Store.Read(pages.HomeConfigKey)
	if err != nil {
		logrus.Error("Error reading home config: ", err)
		raw = ""
	}
	c.JSON(http.StatusOK, pages.ParseHomeConfig(raw))
}

// UpdateHomeConfig сохраняет конфигурацию главной страницы
// @Summary Сохранение конфигурации главной
// @Description Записывает блоки, тексты и карточки главной страницы
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body pages.HomeConfig true "Конфигурация главной"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/home-admin [put]
func (h *APIHandler) UpdateHomeConfig(c *gin.Context) {
	var request pages.HomeConfig
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные")
		return
	}

	raw, err := json.Marshal(request)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сериализации")
		return
	}
	if err := h.Store.Write(pages.HomeConfigKey, string(raw)); err != nil {
		logrus.Error("Error writing home config: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения")
		return
	}

	h.successResponse(c, http.StatusOK, "конфигурация сохранена", nil)
}

// GetConsentConfig отдаёт настройку чекбокса согласия для форм
// @Summary Настройка согласия
// @Description Возвращает настройку чекбокса согласия из docs_config с дефолтами
// @Tags Pages
// @Produce json
// @Success 200 {object} pages.ConsentConfig
// @Router /api/consent-config [get]
func (h *APIHandler) GetConsentConfig(c *gin.Context) {
	raw, err := h.Store.Read(pages.DocsConfigKey)
	if err != nil {
		logrus.Error("Error reading docs config: ", err)
		raw = ""
	}
	c.JSON(http.StatusOK, pages.ParseConsentConfig(raw))
}

// GetContactsConfig отдаёт контакты компании
// @Summary Контакты компании
// @Description Возвращает телефон, мессенджеры и почту из contacts_config с дефолтами
// @Tags Pages
// @Produce json
// @Success 200 {object} pages.GlobalContacts
// @Router /api/contacts-config [get]
func (h *APIHandler) GetContactsConfig(c *gin.Context) {
	raw, err := h.Store.Read(pages.ContactsConfigKey)
	if err != nil {
		logrus.Error("Error reading contacts config: ", err)
		raw = ""
	}
	c.JSON(http.StatusOK, pages.ParseGlobalContacts(raw))
}

// UploadImage загружает изображение услуги
// @Summary Загрузка изображения
// @Description Принимает файл изображения и возвращает ссылку на него (только для администратора)
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Файл изображения"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/upload [post]
func (h *APIHandler) UploadImage(c *gin.Context) {
	if h.Images == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище изображений не настроено")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось открыть файл")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Не удалось прочитать файл")
		return
	}

	filename, err := h.Images.UploadImage(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFormat) {
			h.errorResponse(c, http.StatusBadRequest, "Неподдерживаемый формат изображения")
			return
		}
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	url, err := h.Images.ImageURL(c.Request.Context(), filename)
	if err != nil {
		logrus.Error("Error generating image URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения ссылки")
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url, Filename: filename})
}

// DeleteUploadedImage удаляет загруженное изображение
// @Summary Удаление изображения
// @Description Удаляет файл из хранилища изображений (только для администратора)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param filename path string true "Имя файла"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/upload/{filename} [delete]
func (h *APIHandler) DeleteUploadedImage(c *gin.Context) {
	if h.Images == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище изображений не настроено")
		return
	}

	if err := h.Images.DeleteImage(c.Request.Context(), c.Param("filename")); err != nil {
		logrus.Error("Error deleting image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления изображения")
		return
	}

	h.successResponse(c, http.StatusOK, "изображение удалено", nil)
}
