package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultAPIURL = "https://api.telegram.org"

// Client — минимальный клиент Bot API: одно сообщение — один POST
// в sendMessage, без повторов
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт клиент с ограниченным таймаутом исходящего запроса
func NewClient() *Client {
	return &Client{
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetAPIURL подменяет адрес Bot API (нужно для тестов)
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage отправляет текст в чат через Bot API.
// Любой не-2xx статус считается ошибкой доставки.
func (c *Client) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	payload := sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logrus.Errorf("Telegram API error: status=%d body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("telegram api returned status %d", resp.StatusCode)
	}

	return nil
}
