package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeNominatim поднимает тестовый сервер вместо геокодера
func fakeNominatim(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	return server, &captured
}

func TestSearch_MapsResults(t *testing.T) {
	server, captured := fakeNominatim(t, http.StatusOK,
		`[{"display_name":"Москва, Россия","lat":"55.75","lon":"37.61"}]`)
	defer server.Close()

	client := NewClient()
	client.SetAPIURL(server.URL)

	places, err := client.Search(context.Background(), "Москва")
	if err != nil {
		t.Fatalf("неожиданная ошибка поиска: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("ожидался 1 результат, получено %d", len(places))
	}
	if places[0].DisplayName != "Москва, Россия" {
		t.Errorf("неожиданный адрес: %q", places[0].DisplayName)
	}
	if places[0].Lat != "55.75" || places[0].Lon != "37.61" {
		t.Errorf("неожиданные координаты: %s, %s", places[0].Lat, places[0].Lon)
	}

	query := captured.URL.Query()
	if query.Get("q") != "Москва" {
		t.Errorf("в запросе геокодера неожиданный q: %q", query.Get("q"))
	}
	if query.Get("limit") != "5" {
		t.Errorf("ожидался limit=5, получен %q", query.Get("limit"))
	}
	if query.Get("accept-language") != "ru" {
		t.Errorf("ожидалась русская локаль, получено %q", query.Get("accept-language"))
	}
	if captured.Header.Get("User-Agent") != userAgent {
		t.Errorf("неожиданный User-Agent: %q", captured.Header.Get("User-Agent"))
	}
}

func TestSearch_GeocoderFailure(t *testing.T) {
	server, _ := fakeNominatim(t, http.StatusServiceUnavailable, "")
	defer server.Close()

	client := NewClient()
	client.SetAPIURL(server.URL)

	if _, err := client.Search(context.Background(), "Москва"); err == nil {
		t.Error("при недоступном геокодере ожидалась ошибка")
	}
}

func TestSearch_MalformedResponse(t *testing.T) {
	server, _ := fakeNominatim(t, http.StatusOK, `{"not":"an array"}`)
	defer server.Close()

	client := NewClient()
	client.SetAPIURL(server.URL)

	if _, err := client.Search(context.Background(), "Москва"); err == nil {
		t.Error("при битом ответе геокодера ожидалась ошибка")
	}
}
