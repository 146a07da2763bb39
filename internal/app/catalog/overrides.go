package catalog

// Мутации карты правок. Чистые функции: берут текущую карту и возвращают
// её изменённой, запись в стор остаётся за вызывающим кодом.

// Upsert накладывает новые поля правки поверх уже сохранённых для этого ID
// и снимает флаг удаления: повторное редактирование «воскрешает» услугу
func Upsert(overrides OverridesMap, serviceID string, patch ServiceOverride) OverridesMap {
	if overrides == nil {
		overrides = OverridesMap{}
	}
	current, ok := overrides[serviceID]
	if !ok {
		current = ServiceOverride{ID: serviceID}
	}
	next := merge(current, patch)
	next.ID = serviceID
	next.Deleted = false
	overrides[serviceID] = next
	return overrides
}

// Delete помечает правку удалённой. Запись без содержательных полей
// (пустая служебная) вычищается из карты сразу.
func Delete(overrides OverridesMap, serviceID string) OverridesMap {
	if overrides == nil {
		overrides = OverridesMap{}
	}
	current, ok := overrides[serviceID]
	if ok && current.IsEmpty() {
		delete(overrides, serviceID)
		return overrides
	}
	if !ok {
		current = ServiceOverride{ID: serviceID}
	}
	current.Deleted = true
	overrides[serviceID] = current
	return overrides
}

// merge переносит заданные поля patch поверх current
func merge(current, patch ServiceOverride) ServiceOverride {
	out := current
	if patch.Slug != nil {
		out.Slug = patch.Slug
	}
	if patch.Title != nil {
		out.Title = patch.Title
	}
	if patch.Description != nil {
		out.Description = patch.Description
	}
	if patch.Price != nil {
		out.Price = patch.Price
	}
	if patch.CategoryID != nil {
		out.CategoryID = patch.CategoryID
	}
	if patch.FullDescription != nil {
		out.FullDescription = patch.FullDescription
	}
	if patch.SeoText != nil {
		out.SeoText = patch.SeoText
	}
	if patch.Images != nil {
		out.Images = patch.Images
	}
	if patch.PricingTable != nil {
		out.PricingTable = patch.PricingTable
	}
	if patch.ShowOrderForm != nil {
		out.ShowOrderForm = patch.ShowOrderForm
	}
	return out
}
