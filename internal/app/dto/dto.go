package dto

import (
	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/geo"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Каталог услуг ============

type CategoryListResponse struct {
	Categories []catalog.Category `json:"categories"`
	Total      int                `json:"total"`
}

type ServiceListResponse struct {
	Services []catalog.Service `json:"services"`
	Total    int               `json:"total"`
}

// UpdateServiceRequest — правка услуги из админки. Все поля необязательны:
// переданные накладываются поверх сохранённой правки.
type UpdateServiceRequest struct {
	Slug            *string            `json:"slug"`
	Title           *string            `json:"title"`
	Description     *string            `json:"description"`
	Price           *string            `json:"price"`
	CategoryID      *string            `json:"categoryId"`
	FullDescription *string            `json:"fullDescription"`
	SeoText         *string            `json:"seoText"`
	Images          []string           `json:"images"`
	PricingTable    []catalog.PriceRow `json:"pricingTable"`
	ShowOrderForm   *bool              `json:"showOrderForm"`
}

// ============ Тексты страниц ============

type PageTextResponse struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type UpdatePageTextRequest struct {
	Key  string `json:"key" binding:"required"`
	Text string `json:"text"`
}

// ============ Заявки ============

type LeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	WorkType    string `json:"workType"`
	Comment     string `json:"comment"`
	SourceURL   string `json:"sourceUrl"`
	FormName    string `json:"formName"`
	ServiceName string `json:"serviceName"`
}

type LeadResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ============ Настройки Telegram ============

type TelegramSettingsRequest struct {
	BotToken string `json:"botToken" binding:"required"`
	ChatID   string `json:"chatId" binding:"required"`
}

type TelegramSettingsResponse struct {
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
}

// ============ Аутентификация ============

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Status    string `json:"status"`
	Token     string `json:"token"`
	Login     string `json:"login"`
	ExpiresIn int    `json:"expires_in"`
	TokenType string `json:"token_type"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type ChangeLoginRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewLogin        string `json:"newLogin" binding:"required,min=3"`
}

// ============ Карта контактов ============

type MapSearchResponse struct {
	Results []geo.Place `json:"results"`
}

// ============ Загрузка изображений ============

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
