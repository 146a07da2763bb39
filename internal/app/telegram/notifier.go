package telegram

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

var timeNow = time.Now

// Settings — реквизиты бота, задаваемые через админку
type Settings struct {
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
}

// SettingsStore отдаёт сохранённые в админке реквизиты.
// nil без ошибки означает «ещё не настроено».
type SettingsStore interface {
	TelegramSettings() (*Settings, error)
}

// Коды результата отправки заявки
const (
	CodeSent             = "sent"
	CodeValidationFailed = "validation_failed"
	CodeNotConfigured    = "not_configured"
	CodeDeliveryFailed   = "delivery_failed"
)

// Result — результат обработки заявки. Ошибки наружу не бросаются:
// обработчик формы всегда получает структурированный ответ.
type Result struct {
	Success bool
	Code    string
	Error   string
}

// Notifier проводит заявку по конвейеру: валидация, подбор реквизитов
// (админка → переменные окружения), форматирование и отправка.
type Notifier struct {
	store      SettingsStore
	client     *Client
	envToken   string
	envChatID  string
	production bool
}

// NewNotifier собирает конвейер заявок. envToken/envChatID — реквизиты
// из окружения, запасной вариант на случай пустой админки. production
// управляет поведением при полном отсутствии реквизитов.
func NewNotifier(store SettingsStore, client *Client, envToken, envChatID string, production bool) *Notifier {
	return &Notifier{
		store:      store,
		client:     client,
		envToken:   envToken,
		envChatID:  envChatID,
		production: production,
	}
}

// Send валидирует заявку и отправляет уведомление в Telegram
func (n *Notifier) Send(ctx context.Context, lead Lead) Result {
	if !lead.Validate() {
		return Result{Success: false, Code: CodeValidationFailed, Error: "Имя и телефон обязательны"}
	}

	// Сначала настройки из админки, затем фоллбэк на окружение
	botToken, chatID := n.envToken, n.envChatID
	stored, err := n.store.TelegramSettings()
	if err != nil {
		logrus.Error("Error reading telegram settings: ", err)
	}
	if stored != nil {
		if stored.BotToken != "" {
			botToken = stored.BotToken
		}
		if stored.ChatID != "" {
			chatID = stored.ChatID
		}
	}

	if botToken == "" || chatID == "" {
		if n.production {
			logrus.Error("Telegram credentials not configured")
			return Result{Success: false, Code: CodeNotConfigured, Error: "Сервис временно недоступен"}
		}
		// Вне продакшена отсутствие реквизитов не блокирует форму
		logrus.Warn("Telegram credentials are not configured, skipping real send")
		return Result{Success: true, Code: CodeSent}
	}

	text := BuildLeadMessage(lead, timeNow())
	if err := n.client.SendMessage(ctx, botToken, chatID, text); err != nil {
		logrus.Error("Error sending telegram message: ", err)
		return Result{Success: false, Code: CodeDeliveryFailed, Error: "Ошибка отправки сообщения"}
	}

	return Result{Success: true, Code: CodeSent}
}
