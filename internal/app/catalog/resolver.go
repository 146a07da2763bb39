package catalog

import "sort"

// Resolver собирает «эффективный» каталог: базовые услуги из data.go,
// поверх которых наложены правки из админки. Сам ничего не читает и не
// пишет — карту правок ему передают снаружи, поэтому слияние детерминировано
// и тестируется без стора.

const defaultTitle = "Новая услуга"

// apply накладывает правку на базовую услугу: заданное в правке поле
// побеждает, незаданное остаётся от базы
func apply(base Service, ov ServiceOverride) Service {
	out := base
	if ov.Slug != nil {
		out.Slug = *ov.Slug
	}
	if ov.Title != nil {
		out.Title = *ov.Title
	}
	if ov.Description != nil {
		out.Description = *ov.Description
	}
	if ov.Price != nil {
		out.Price = *ov.Price
	}
	if ov.CategoryID != nil {
		out.CategoryID = *ov.CategoryID
	}
	if ov.FullDescription != nil {
		out.FullDescription = *ov.FullDescription
	}
	if ov.SeoText != nil {
		out.SeoText = *ov.SeoText
	}
	if ov.Images != nil {
		out.Images = ov.Images
	}
	if ov.PricingTable != nil {
		out.PricingTable = ov.PricingTable
	}
	if ov.ShowOrderForm != nil {
		out.ShowOrderForm = ov.ShowOrderForm
	}
	return out
}

// synthesize строит услугу целиком из правки — для записей, у которых
// нет базовой услуги (добавлены через админку)
func synthesize(ov ServiceOverride) Service {
	s := Service{ID: ov.ID, Title: defaultTitle}
	return apply(s, ov)
}

func hasBase(id string) bool {
	for i := range services {
		if services[i].ID == id {
			return true
		}
	}
	return false
}

// ServicesByCategory возвращает эффективные услуги категории:
// сначала базовые (в порядке каталога, с правками, без мягко удалённых),
// затем добавленные через админку — отсортированные по ID правки,
// чтобы порядок не зависел от обхода карты
func ServicesByCategory(categoryID string, overrides OverridesMap) []Service {
	out := make([]Service, 0, len(services))
	for _, base := range services {
		if base.CategoryID != categoryID {
			continue
		}
		ov, ok := overrides[base.ID]
		if !ok {
			out = append(out, base)
			continue
		}
		if ov.Deleted {
			continue
		}
		out = append(out, apply(base, ov))
	}

	extraIDs := make([]string, 0)
	for id, ov := range overrides {
		if ov.Deleted || hasBase(id) {
			continue
		}
		if ov.CategoryID == nil || *ov.CategoryID != categoryID {
			continue
		}
		extraIDs = append(extraIDs, id)
	}
	sort.Strings(extraIDs)
	for _, id := range extraIDs {
		out = append(out, synthesize(overrides[id]))
	}
	return out
}

// AllServices возвращает все эффективные услуги по всем категориям
func AllServices(overrides OverridesMap) []Service {
	out := make([]Service, 0, len(services))
	for _, cat := range categories {
		out = append(out, ServicesByCategory(cat.ID, overrides)...)
	}
	return out
}

// ServiceBySlug ищет эффективную услугу по slug внутри категории.
// Сначала базовый каталог, потом добавленные через админку записи.
// Возвращает nil, если услуга не найдена или мягко удалена.
func ServiceBySlug(categorySlug, slug string, overrides OverridesMap) *Service {
	cat := CategoryBySlug(categorySlug)
	if cat == nil {
		return nil
	}
	for _, s := range ServicesByCategory(cat.ID, overrides) {
		if s.Slug == slug {
			out := s
			return &out
		}
	}
	return nil
}

// ServiceByID возвращает эффективную услугу по её ID (для редактирования
// в админке). Мягко удалённые записи не возвращаются.
func ServiceByID(id string, overrides OverridesMap) *Service {
	ov, hasOv := overrides[id]
	if hasOv && ov.Deleted {
		return nil
	}
	for _, base := range services {
		if base.ID != id {
			continue
		}
		if hasOv {
			s := apply(base, ov)
			return &s
		}
		s := base
		return &s
	}
	if hasOv {
		s := synthesize(ov)
		return &s
	}
	return nil
}
