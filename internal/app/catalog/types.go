package catalog

// Category — статическая категория услуг (раздел каталога)
type Category struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PriceRow — строка прайс-таблицы услуги
type PriceRow struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Unit  string `json:"unit,omitempty"`
}

// Service — услуга каталога. Базовый набор задаётся в коде (data.go),
// поверх него админка накладывает правки через ServiceOverride.
type Service struct {
	ID              string     `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Price           string     `json:"price,omitempty"`
	CategoryID      string     `json:"categoryId"`
	FullDescription string     `json:"fullDescription,omitempty"`
	SeoText         string     `json:"seoText,omitempty"`
	Images          []string   `json:"images,omitempty"`
	PricingTable    []PriceRow `json:"pricingTable,omitempty"`
	// Показывать ли форму заявки на странице услуги. По умолчанию true.
	ShowOrderForm *bool `json:"showOrderForm,omitempty"`
}

// ServiceOverride — правка услуги из админки, ключ — ID услуги.
// Указатели отличают «поле не задано» от явно заданного пустого значения.
// ID может не совпадать ни с одной базовой услугой — тогда запись целиком
// описывает новую («виртуальную») услугу.
type ServiceOverride struct {
	ID              string     `json:"id"`
	Slug            *string    `json:"slug,omitempty"`
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Price           *string    `json:"price,omitempty"`
	CategoryID      *string    `json:"categoryId,omitempty"`
	FullDescription *string    `json:"fullDescription,omitempty"`
	SeoText         *string    `json:"seoText,omitempty"`
	Images          []string   `json:"images,omitempty"`
	PricingTable    []PriceRow `json:"pricingTable,omitempty"`
	ShowOrderForm   *bool      `json:"showOrderForm,omitempty"`
	Deleted         bool       `json:"deleted,omitempty"`
}

// OverridesMap — карта правок по ID услуги, как она хранится в сторе
type OverridesMap = map[string]ServiceOverride

// IsEmpty сообщает, что правка не несёт содержательных полей
// (ни slug, ни названия, ни описания). Такие записи при удалении
// вычищаются из стора сразу, без мягкого удаления.
func (o ServiceOverride) IsEmpty() bool {
	return strEmpty(o.Slug) && strEmpty(o.Title) && strEmpty(o.Description)
}

func strEmpty(s *string) bool {
	return s == nil || *s == ""
}
