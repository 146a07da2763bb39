package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/config"
	"heavyprofile/internal/app/dto"
	"heavyprofile/internal/app/geo"
	"heavyprofile/internal/app/telegram"

	"github.com/gin-gonic/gin"
)

// memStore — стор в памяти для тестов обработчиков
type memStore struct {
	overrides catalog.OverridesMap
	texts     map[string]string
	settings  *telegram.Settings
	login     string
	password  string
}

func newMemStore() *memStore {
	return &memStore{
		overrides: catalog.OverridesMap{},
		texts:     map[string]string{},
	}
}

func (s *memStore) ReadAll() (catalog.OverridesMap, error) { return s.overrides, nil }
func (s *memStore) WriteAll(m catalog.OverridesMap) error  { s.overrides = m; return nil }
func (s *memStore) Read(key string) (string, error)        { return s.texts[key], nil }
func (s *memStore) Write(key, value string) error          { s.texts[key] = value; return nil }
func (s *memStore) TelegramSettings() (*telegram.Settings, error) {
	return s.settings, nil
}
func (s *memStore) UpdateTelegramSettings(settings telegram.Settings) error {
	s.settings = &settings
	return nil
}
func (s *memStore) Credentials() (string, string, error) { return s.login, s.password, nil }
func (s *memStore) UpdateCredentials(login, passwordHash string) error {
	s.login = login
	s.password = passwordHash
	return nil
}

func newTestRouter(store *memStore) *gin.Engine {
	return newTestRouterWithGeo(store, geo.NewClient())
}

func newTestRouterWithGeo(store *memStore, geocoder *geo.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	notifier := telegram.NewNotifier(store, telegram.NewClient(), "", "", false)
	cfg := &config.Config{AdminLogin: "admin", AdminPassword: "admin123"}
	authHandler := NewAuthHandler(store, nil, cfg)
	h := NewAPIHandler(store, notifier, nil, geocoder, cfg, authHandler)

	router := gin.New()
	router.GET("/api/categories", h.GetCategories)
	router.GET("/api/categories/:slug", h.GetCategory)
	router.GET("/api/services", h.GetServices)
	router.GET("/api/services/:category/:slug", h.GetService)
	router.GET("/api/admin/services-overrides", h.GetServiceOverrides)
	router.GET("/api/admin/page-texts", h.GetPageText)
	router.POST("/api/admin/page-texts", h.UpdatePageText)
	router.PUT("/api/admin/services/:id", h.UpdateService)
	router.DELETE("/api/admin/services/:id", h.DeleteService)
	router.POST("/api/lead", h.SubmitLead)
	router.GET("/api/maps/search", h.SearchMaps)
	router.GET("/api/admin/current-username", h.AuthHandler.CurrentUsername)
	router.DELETE("/api/upload/:filename", h.DeleteUploadedImage)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("не удалось сериализовать тело запроса: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetCategories(t *testing.T) {
	router := newTestRouter(newMemStore())

	w := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.CategoryListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response.Total != len(catalog.Categories()) {
		t.Errorf("ожидалось %d категорий, получено %d", len(catalog.Categories()), response.Total)
	}
}

func TestGetServicesByUnknownCategory(t *testing.T) {
	router := newTestRouter(newMemStore())

	w := doJSON(t, router, http.MethodGet, "/api/services?category=nonexistent", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("для неизвестной категории ожидался статус 404, получен %d", w.Code)
	}
}

func TestGetServicesSearch(t *testing.T) {
	router := newTestRouter(newMemStore())

	w := doJSON(t, router, http.MethodGet, "/api/services?query=грузчик", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.ServiceListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response.Total == 0 {
		t.Error("поиск по слову 'грузчик' не нашёл ни одной услуги")
	}
	for _, s := range response.Services {
		if s.Title == "" {
			t.Error("в выдаче поиска услуга без названия")
		}
	}
}

func TestUpdateServiceAppliesOverride(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	newTitle := "Грузчики премиум"
	w := doJSON(t, router, http.MethodPut, "/api/admin/services/loaders", dto.UpdateServiceRequest{
		Title: &newTitle,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d: %s", w.Code, w.Body.String())
	}

	// Правка должна быть видна на публичной странице услуги
	w = doJSON(t, router, http.MethodGet, "/api/services/warehouse/gruzchiki", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var service catalog.Service
	if err := json.Unmarshal(w.Body.Bytes(), &service); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if service.Title != newTitle {
		t.Errorf("ожидалось название %q, получено %q", newTitle, service.Title)
	}
}

func TestDeleteServiceHidesIt(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodDelete, "/api/admin/services/loaders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/services/warehouse/gruzchiki", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("удалённая услуга должна отдавать 404, получен %d", w.Code)
	}
}

func TestPageTextRoundtrip(t *testing.T) {
	router := newTestRouter(newMemStore())

	w := doJSON(t, router, http.MethodPost, "/api/admin/page-texts", dto.UpdatePageTextRequest{
		Key:  "about_page",
		Text: "О компании",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/admin/page-texts?key=about_page", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.PageTextResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response.Text != "О компании" {
		t.Errorf("ожидался текст 'О компании', получен %q", response.Text)
	}
}

func TestGetPageTextMissingReturnsEmpty(t *testing.T) {
	router := newTestRouter(newMemStore())

	w := doJSON(t, router, http.MethodGet, "/api/admin/page-texts?key=unknown", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.PageTextResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response.Text != "" {
		t.Errorf("для несохранённого ключа ожидался пустой текст, получен %q", response.Text)
	}
}

func TestSubmitLeadValidation(t *testing.T) {
	router := newTestRouter(newMemStore())

	// Без телефона заявка не проходит валидацию
	w := doJSON(t, router, http.MethodPost, "/api/lead", map[string]string{
		"name": "Иван",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался статус 400, получен %d", w.Code)
	}

	var response dto.LeadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response.Success {
		t.Error("невалидная заявка не должна считаться успешной")
	}
	if response.Error != "Имя и телефон обязательны" {
		t.Errorf("неожиданный текст ошибки: %q", response.Error)
	}
}

func TestMapsSearchProxiesGeocoder(t *testing.T) {
	geocoderCalls := 0
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocoderCalls++
		w.Write([]byte(`[{"display_name":"Москва, Россия","lat":"55.75","lon":"37.61"}]`))
	}))
	defer fake.Close()

	geocoder := geo.NewClient()
	geocoder.SetAPIURL(fake.URL)
	router := newTestRouterWithGeo(newMemStore(), geocoder)

	w := doJSON(t, router, http.MethodGet, "/api/maps/search?q=Москва", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.MapSearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if len(response.Results) != 1 || response.Results[0].DisplayName != "Москва, Россия" {
		t.Errorf("неожиданная выдача: %+v", response.Results)
	}
	if geocoderCalls != 1 {
		t.Errorf("ожидался 1 запрос к геокодеру, сделано %d", geocoderCalls)
	}
}

func TestMapsSearchShortQuerySkipsGeocoder(t *testing.T) {
	geocoderCalls := 0
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocoderCalls++
		w.Write([]byte(`[]`))
	}))
	defer fake.Close()

	geocoder := geo.NewClient()
	geocoder.SetAPIURL(fake.URL)
	router := newTestRouterWithGeo(newMemStore(), geocoder)

	for _, q := range []string{"", "ab", "  а  "} {
		w := doJSON(t, router, http.MethodGet, "/api/maps/search?q="+url.QueryEscape(q), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ожидался статус 200, получен %d", w.Code)
		}

		var response dto.MapSearchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("не удалось разобрать ответ: %v", err)
		}
		if len(response.Results) != 0 {
			t.Errorf("для короткого запроса %q ожидалась пустая выдача", q)
		}
	}
	if geocoderCalls != 0 {
		t.Errorf("короткие запросы не должны уходить в геокодер, сделано %d", geocoderCalls)
	}
}

func TestMapsSearchDegradesToEmptyResults(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer fake.Close()

	geocoder := geo.NewClient()
	geocoder.SetAPIURL(fake.URL)
	router := newTestRouterWithGeo(newMemStore(), geocoder)

	// Сбой геокодера не должен отдавать наружу ошибочный статус
	w := doJSON(t, router, http.MethodGet, "/api/maps/search?q=Москва", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.MapSearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response.Results == nil || len(response.Results) != 0 {
		t.Errorf("при сбое геокодера ожидался пустой массив results, получено %+v", response.Results)
	}
}

func TestDeleteUploadedImageWithoutStorage(t *testing.T) {
	router := newTestRouter(newMemStore())

	// Без настроенного MinIO удаление отвечает 503, а не падает
	w := doJSON(t, router, http.MethodDelete, "/api/upload/img_deadbeef_1.jpg", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("ожидался статус 503, получен %d", w.Code)
	}
}

func TestCurrentUsername(t *testing.T) {
	store := newMemStore()
	router := newTestRouter(store)

	// Пока логин не сохранён — значение из конфига
	w := doJSON(t, router, http.MethodGet, "/api/admin/current-username", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response["username"] != "admin" {
		t.Errorf("ожидался логин admin, получен %q", response["username"])
	}

	// Сохранённый логин имеет приоритет над конфигом
	store.login = "director"
	w = doJSON(t, router, http.MethodGet, "/api/admin/current-username", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if response["username"] != "director" {
		t.Errorf("ожидался логин director, получен %q", response["username"])
	}
}

func TestSubmitLeadWithoutCredentialsInDevMode(t *testing.T) {
	router := newTestRouter(newMemStore())

	// Вне продакшена отсутствие реквизитов Telegram не блокирует форму
	w := doJSON(t, router, http.MethodPost, "/api/lead", map[string]string{
		"name":  "Иван",
		"phone": "+7 (900) 123-45-67",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("ожидался статус 200, получен %d", w.Code)
	}

	var response dto.LeadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("не удалось разобрать ответ: %v", err)
	}
	if !response.Success {
		t.Errorf("в режиме разработки заявка должна приниматься: %q", response.Error)
	}
}
