package handler

import (
	"net/http"
	"strings"

	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// ============ ДОМЕН КАТАЛОГ ============

// GetCategories возвращает список категорий услуг
// @Summary Список категорий
// @Description Возвращает все категории каталога услуг
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /api/categories [get]
func (h *APIHandler) GetCategories(c *gin.Context) {
	cats := catalog.Categories()
	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: cats,
		Total:      len(cats),
	})
}

// GetCategory возвращает категорию и её услуги
// @Summary Категория с услугами
// @Description Возвращает категорию по slug вместе с эффективным списком её услуг
// @Tags Catalog
// @Produce json
// @Param slug path string true "Slug категории"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{slug} [get]
func (h *APIHandler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")
	cat := catalog.CategoryBySlug(slug)
	if cat == nil {
		h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
		return
	}

	services := catalog.ServicesByCategory(cat.ID, h.overrides())
	c.JSON(http.StatusOK, gin.H{
		"category": cat,
		"services": services,
	})
}

// GetServices возвращает список услуг с учётом правок админки
// @Summary Список услуг
// @Description Возвращает эффективные услуги, опционально по категории и поиску по названию
// @Tags Catalog
// @Produce json
// @Param category query string false "Slug категории"
// @Param query query string false "Поиск по названию услуги"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	overrides := h.overrides()

	var services []catalog.Service
	if categorySlug := c.Query("category"); categorySlug != "" {
		cat := catalog.CategoryBySlug(categorySlug)
		if cat == nil {
			h.errorResponse(c, http.StatusNotFound, "Категория не найдена")
			return
		}
		services = catalog.ServicesByCategory(cat.ID, overrides)
	} else {
		services = catalog.AllServices(overrides)
	}

	if searchQuery := c.Query("query"); searchQuery != "" {
		needle := strings.ToLower(searchQuery)
		filtered := make([]catalog.Service, 0, len(services))
		for _, s := range services {
			if strings.Contains(strings.ToLower(s.Title), needle) {
				filtered = append(filtered, s)
			}
		}
		services = filtered
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: services,
		Total:    len(services),
	})
}

// GetService возвращает одну услугу по slug внутри категории
// @Summary Страница услуги
// @Description Возвращает эффективную услугу по slug категории и slug услуги
// @Tags Catalog
// @Produce json
// @Param category path string true "Slug категории"
// @Param slug path string true "Slug услуги"
// @Success 200 {object} catalog.Service
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{category}/{slug} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	categorySlug := c.Param("category")
	slug := c.Param("slug")

	service := catalog.ServiceBySlug(categorySlug, slug, h.overrides())
	if service == nil {
		h.errorResponse(c, http.StatusNotFound, "Услуга не найдена")
		return
	}

	c.JSON(http.StatusOK, service)
}
