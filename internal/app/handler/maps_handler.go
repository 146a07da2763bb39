package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"heavyprofile/internal/app/dto"
	"heavyprofile/internal/app/geo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КАРТА ============

// SearchMaps ищет адреса для автодополнения карты контактов
// @Summary Поиск адресов
// @Description Проксирует запрос в геокодер. Любой сбой отдаёт пустую выдачу: подсказки не должны ломать форму.
// @Tags Maps
// @Produce json
// @Param q query string true "Строка поиска (от 3 символов)"
// @Success 200 {object} dto.MapSearchResponse
// @Router /api/maps/search [get]
func (h *APIHandler) SearchMaps(c *gin.Context) {
	empty := dto.MapSearchResponse{Results: []geo.Place{}}

	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < 3 {
		c.JSON(http.StatusOK, empty)
		return
	}

	places, err := h.Geocoder.Search(c.Request.Context(), query)
	if err != nil {
		logrus.Error("Maps search error: ", err)
		c.JSON(http.StatusOK, empty)
		return
	}

	c.JSON(http.StatusOK, dto.MapSearchResponse{Results: places})
}
