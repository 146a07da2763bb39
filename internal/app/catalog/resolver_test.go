package catalog

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

//
// Слияние базовой услуги с правкой
//

func TestServicesByCategory_OverridePrecedence(t *testing.T) {
	overrides := OverridesMap{
		"loaders": {ID: "loaders", Title: strPtr("Опытные грузчики")},
	}

	list := ServicesByCategory("warehouse", overrides)

	var found *Service
	for i := range list {
		if list[i].ID == "loaders" {
			found = &list[i]
		}
	}
	if found == nil {
		t.Fatal("услуга loaders не найдена в категории warehouse")
	}
	if found.Title != "Опытные грузчики" {
		t.Errorf("ожидали title из правки, получили %q", found.Title)
	}
	// Незаданные в правке поля берутся из базы
	if found.Slug != "gruzchiki" {
		t.Errorf("ожидали базовый slug gruzchiki, получили %q", found.Slug)
	}
	if found.Description != "Грузчики для складских работ" {
		t.Errorf("ожидали базовое описание, получили %q", found.Description)
	}
}

func TestServicesByCategory_EmptyStringOverridesBase(t *testing.T) {
	// Явно заданная пустая строка — это тоже правка, а не «поле не задано»
	overrides := OverridesMap{
		"loaders": {ID: "loaders", Description: strPtr("")},
	}

	s := ServiceByID("loaders", overrides)
	if s == nil {
		t.Fatal("услуга loaders не найдена")
	}
	if s.Description != "" {
		t.Errorf("ожидали пустое описание из правки, получили %q", s.Description)
	}
}

func TestServicesByCategory_Deterministic(t *testing.T) {
	overrides := OverridesMap{
		"loaders": {ID: "loaders", Title: strPtr("Опытные грузчики")},
		"new-b":   {ID: "new-b", CategoryID: strPtr("warehouse"), Title: strPtr("Б")},
		"new-a":   {ID: "new-a", CategoryID: strPtr("warehouse"), Title: strPtr("А")},
	}

	first := ServicesByCategory("warehouse", overrides)
	second := ServicesByCategory("warehouse", overrides)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("повторное слияние с теми же данными дало другой результат")
	}

	// Добавленные через админку записи идут после базовых, по ID
	n := len(first)
	if n < 2 {
		t.Fatalf("слишком короткий список: %d", n)
	}
	if first[n-2].ID != "new-a" || first[n-1].ID != "new-b" {
		t.Errorf("ожидали new-a, new-b в конце списка, получили %q, %q",
			first[n-2].ID, first[n-1].ID)
	}
}

//
// Мягкое удаление
//

func TestServicesByCategory_SoftDeleteExcluded(t *testing.T) {
	overrides := OverridesMap{
		"loaders": {ID: "loaders", Title: strPtr("Грузчики"), Deleted: true},
		"new-1":   {ID: "new-1", CategoryID: strPtr("warehouse"), Title: strPtr("Новая"), Deleted: true},
	}

	for _, s := range ServicesByCategory("warehouse", overrides) {
		if s.ID == "loaders" || s.ID == "new-1" {
			t.Errorf("удалённая услуга %q попала в выдачу", s.ID)
		}
	}

	if s := ServiceByID("loaders", overrides); s != nil {
		t.Error("удалённая базовая услуга доступна по ID")
	}
	if s := ServiceBySlug("warehouse", "gruzchiki", overrides); s != nil {
		t.Error("удалённая услуга доступна по slug")
	}
}

//
// Виртуальные услуги (есть только правка, базовой записи нет)
//

func TestServicesByCategory_SynthesizedService(t *testing.T) {
	overrides := OverridesMap{
		"new-1": {ID: "new-1", CategoryID: strPtr("warehouse")},
	}

	var matches []Service
	for _, s := range ServicesByCategory("warehouse", overrides) {
		if s.ID == "new-1" {
			matches = append(matches, s)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("ожидали ровно одну добавленную услугу, получили %d", len(matches))
	}
	s := matches[0]
	if s.Title != "Новая услуга" {
		t.Errorf("ожидали дефолтное название, получили %q", s.Title)
	}
	if s.Description != "" || s.Slug != "" {
		t.Errorf("ожидали пустые описание и slug, получили %q / %q", s.Description, s.Slug)
	}
}

func TestServicesByCategory_SynthesizedWrongCategory(t *testing.T) {
	overrides := OverridesMap{
		"new-1": {ID: "new-1", CategoryID: strPtr("construction"), Title: strPtr("Чужая")},
		"new-2": {ID: "new-2", Title: strPtr("Без категории")},
	}

	for _, s := range ServicesByCategory("warehouse", overrides) {
		if s.ID == "new-1" || s.ID == "new-2" {
			t.Errorf("услуга %q не должна попадать в warehouse", s.ID)
		}
	}
}

func TestServiceBySlug_SynthesizedLookup(t *testing.T) {
	overrides := OverridesMap{
		"new-1": {
			ID:         "new-1",
			CategoryID: strPtr("warehouse"),
			Slug:       strPtr("ekspress-gruzchiki"),
			Title:      strPtr("Экспресс-грузчики"),
		},
	}

	s := ServiceBySlug("warehouse", "ekspress-gruzchiki", overrides)
	if s == nil {
		t.Fatal("добавленная услуга не находится по slug")
	}
	if s.Title != "Экспресс-грузчики" {
		t.Errorf("неожиданное название: %q", s.Title)
	}

	if s := ServiceBySlug("no-such-category", "ekspress-gruzchiki", overrides); s != nil {
		t.Error("несуществующая категория должна давать пустой результат")
	}
}

//
// Деградация на мусорных данных
//

func TestServicesByCategory_UnknownCategory(t *testing.T) {
	if list := ServicesByCategory("no-such", OverridesMap{}); len(list) != 0 {
		t.Errorf("неизвестная категория должна давать пустой список, получили %d", len(list))
	}
}

func TestServiceByID_Unknown(t *testing.T) {
	if s := ServiceByID("no-such", nil); s != nil {
		t.Error("ожидали nil для неизвестного ID без правок")
	}
}

//
// Сценарий из жизни: правка базовой + добавленная услуга в одной категории
//

func TestResolve_CombinedScenario(t *testing.T) {
	overrides := OverridesMap{
		"loaders": {ID: "loaders", Title: strPtr("Опытные грузчики")},
		"new-1":   {ID: "new-1", CategoryID: strPtr("warehouse"), Title: strPtr("Экспресс-грузчики")},
	}

	list := ServicesByCategory("warehouse", overrides)

	var loaders, extra *Service
	for i := range list {
		switch list[i].ID {
		case "loaders":
			loaders = &list[i]
		case "new-1":
			extra = &list[i]
		}
	}
	if loaders == nil || extra == nil {
		t.Fatal("в выдаче нет ожидаемых услуг")
	}
	if loaders.Slug != "gruzchiki" || loaders.Title != "Опытные грузчики" {
		t.Errorf("базовая услуга слита неверно: %+v", loaders)
	}
	if extra.Title != "Экспресс-грузчики" || extra.Slug != "" {
		t.Errorf("добавленная услуга собрана неверно: %+v", extra)
	}
}

//
// Жизненный цикл правки: Upsert / Delete
//

func TestUpsert_ResetsDeleted(t *testing.T) {
	m := OverridesMap{
		"loaders": {ID: "loaders", Title: strPtr("Старое"), Deleted: true},
	}

	m = Upsert(m, "loaders", ServiceOverride{Description: strPtr("Новое описание")})

	ov := m["loaders"]
	if ov.Deleted {
		t.Error("редактирование должно снимать флаг удаления")
	}
	if ov.Title == nil || *ov.Title != "Старое" {
		t.Error("старые поля правки должны сохраняться")
	}
	if ov.Description == nil || *ov.Description != "Новое описание" {
		t.Error("новые поля должны накладываться")
	}
}

func TestDelete_PurgesEmptyOverride(t *testing.T) {
	m := OverridesMap{
		"loaders": {ID: "loaders"},
	}

	m = Delete(m, "loaders")
	if _, ok := m["loaders"]; ok {
		t.Error("пустая служебная запись должна удаляться целиком")
	}
}

func TestDelete_SoftDeletesContentOverride(t *testing.T) {
	m := OverridesMap{
		"loaders": {ID: "loaders", Title: strPtr("Опытные грузчики")},
	}

	m = Delete(m, "loaders")
	ov, ok := m["loaders"]
	if !ok {
		t.Fatal("содержательная запись должна остаться в карте")
	}
	if !ov.Deleted {
		t.Error("ожидали флаг удаления")
	}
	if ov.Title == nil || *ov.Title != "Опытные грузчики" {
		t.Error("поля правки должны сохраниться при мягком удалении")
	}
}

func TestDelete_AbsentOverrideStillHidesBase(t *testing.T) {
	m := Delete(OverridesMap{}, "loaders")

	if s := ServiceByID("loaders", m); s != nil {
		t.Error("базовая услуга без правки после удаления должна скрываться")
	}
}
