package handler

import (
	"net/http"

	"heavyprofile/internal/app/dto"
	"heavyprofile/internal/app/telegram"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН ЗАЯВКИ ============

// SubmitLead принимает заявку с формы и отправляет её в Telegram
// @Summary Отправка заявки
// @Description Валидирует заявку, форматирует сообщение и шлёт его в Telegram-чат менеджеров
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body dto.LeadRequest true "Данные заявки"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} dto.LeadResponse
// @Router /api/lead [post]
func (h *APIHandler) SubmitLead(c *gin.Context) {
	var request dto.LeadRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.LeadResponse{
			Success: false,
			Error:   "Имя и телефон обязательны",
		})
		return
	}

	lead := telegram.Lead{
		Name:        request.Name,
		Phone:       request.Phone,
		WorkType:    request.WorkType,
		Comment:     request.Comment,
		SourceURL:   request.SourceURL,
		FormName:    request.FormName,
		ServiceName: request.ServiceName,
	}

	result := h.Notifier.Send(c.Request.Context(), lead)

	// Ошибки конвейера отдаются структурно — фронту важен флаг, не статус
	status := http.StatusOK
	if result.Code == telegram.CodeValidationFailed {
		status = http.StatusBadRequest
	}
	c.JSON(status, dto.LeadResponse{
		Success: result.Success,
		Error:   result.Error,
	})
}
