package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeSettingsStore struct {
	settings *Settings
	err      error
}

func (f *fakeSettingsStore) TelegramSettings() (*Settings, error) {
	return f.settings, f.err
}

// fakeBotAPI поднимает тестовый сервер вместо Bot API и считает запросы
func fakeBotAPI(t *testing.T, status int) (*httptest.Server, *int, *sendMessageRequest, *string) {
	t.Helper()
	calls := 0
	var last sendMessageRequest
	var lastPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		lastPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			t.Errorf("некорректное тело запроса: %v", err)
		}
		w.WriteHeader(status)
		w.Write([]byte(`{"ok":true}`))
	}))
	return server, &calls, &last, &lastPath
}

func newTestNotifier(store SettingsStore, apiURL, envToken, envChat string, production bool) *Notifier {
	client := NewClient()
	client.SetAPIURL(apiURL)
	return NewNotifier(store, client, envToken, envChat, production)
}

func TestSend_ValidationFailure(t *testing.T) {
	server, calls, _, _ := fakeBotAPI(t, http.StatusOK)
	defer server.Close()

	n := newTestNotifier(&fakeSettingsStore{}, server.URL, "token", "chat", true)

	cases := []Lead{
		{Name: "", Phone: "123"},
		{Name: "Иван", Phone: ""},
		{Name: "   ", Phone: "123"},
		{Name: "Иван", Phone: "\t "},
	}
	for _, lead := range cases {
		res := n.Send(context.Background(), lead)
		if res.Success || res.Code != CodeValidationFailed {
			t.Errorf("ожидали validation_failed для %+v, получили %+v", lead, res)
		}
	}
	if *calls != 0 {
		t.Errorf("валидация не должна приводить к сетевым вызовам, было %d", *calls)
	}
}

func TestSend_StoredSettingsWinOverEnv(t *testing.T) {
	server, calls, last, lastPath := fakeBotAPI(t, http.StatusOK)
	defer server.Close()

	store := &fakeSettingsStore{settings: &Settings{BotToken: "stored-token", ChatID: "stored-chat"}}
	n := newTestNotifier(store, server.URL, "env-token", "env-chat", true)

	res := n.Send(context.Background(), Lead{Name: "Иван", Phone: "123"})
	if !res.Success {
		t.Fatalf("ожидали успех, получили %+v", res)
	}
	if *calls != 1 {
		t.Fatalf("ожидали один вызов API, было %d", *calls)
	}
	if !strings.Contains(*lastPath, "botstored-token") {
		t.Errorf("должен использоваться токен из админки, путь: %q", *lastPath)
	}
	if last.ChatID != "stored-chat" {
		t.Errorf("должен использоваться chat_id из админки, получили %q", last.ChatID)
	}
	if last.ParseMode != "Markdown" {
		t.Errorf("ожидали parse_mode Markdown, получили %q", last.ParseMode)
	}
}

func TestSend_EnvFallback(t *testing.T) {
	server, _, last, lastPath := fakeBotAPI(t, http.StatusOK)
	defer server.Close()

	n := newTestNotifier(&fakeSettingsStore{settings: nil}, server.URL, "env-token", "env-chat", true)

	res := n.Send(context.Background(), Lead{Name: "Иван", Phone: "123"})
	if !res.Success {
		t.Fatalf("ожидали успех, получили %+v", res)
	}
	if !strings.Contains(*lastPath, "botenv-token") || last.ChatID != "env-chat" {
		t.Errorf("должны использоваться реквизиты из окружения: %q / %q", *lastPath, last.ChatID)
	}
}

func TestSend_NoCredentialsProduction(t *testing.T) {
	server, calls, _, _ := fakeBotAPI(t, http.StatusOK)
	defer server.Close()

	n := newTestNotifier(&fakeSettingsStore{}, server.URL, "", "", true)

	res := n.Send(context.Background(), Lead{Name: "Иван", Phone: "123"})
	if res.Success || res.Code != CodeNotConfigured {
		t.Errorf("в продакшене без реквизитов ожидали not_configured, получили %+v", res)
	}
	if *calls != 0 {
		t.Errorf("не должно быть сетевых вызовов, было %d", *calls)
	}
}

func TestSend_NoCredentialsDevelopment(t *testing.T) {
	server, calls, _, _ := fakeBotAPI(t, http.StatusOK)
	defer server.Close()

	n := newTestNotifier(&fakeSettingsStore{}, server.URL, "", "", false)

	res := n.Send(context.Background(), Lead{Name: "Иван", Phone: "123"})
	if !res.Success {
		t.Errorf("вне продакшена без реквизитов ожидали тихий успех, получили %+v", res)
	}
	if *calls != 0 {
		t.Errorf("не должно быть сетевых вызовов, было %d", *calls)
	}
}

func TestSend_DeliveryFailure(t *testing.T) {
	server, calls, _, _ := fakeBotAPI(t, http.StatusBadRequest)
	defer server.Close()

	n := newTestNotifier(&fakeSettingsStore{}, server.URL, "token", "chat", true)

	res := n.Send(context.Background(), Lead{Name: "Иван", Phone: "123"})
	if res.Success || res.Code != CodeDeliveryFailed {
		t.Errorf("ожидали delivery_failed, получили %+v", res)
	}
	if *calls != 1 {
		t.Errorf("ожидали ровно один вызов без повторов, было %d", *calls)
	}
}

func TestSend_StoreErrorFallsBackToEnv(t *testing.T) {
	server, calls, _, lastPath := fakeBotAPI(t, http.StatusOK)
	defer server.Close()

	store := &fakeSettingsStore{err: context.DeadlineExceeded}
	n := newTestNotifier(store, server.URL, "env-token", "env-chat", true)

	res := n.Send(context.Background(), Lead{Name: "Иван", Phone: "123"})
	if !res.Success {
		t.Fatalf("ошибка стора не должна блокировать отправку: %+v", res)
	}
	if *calls != 1 || !strings.Contains(*lastPath, "botenv-token") {
		t.Errorf("ожидали фоллбэк на окружение, path=%q calls=%d", *lastPath, *calls)
	}
}
