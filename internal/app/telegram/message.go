package telegram

import (
	"fmt"
	"strings"
	"time"
)

// Спецсимволы Telegram Markdown: любые пользовательские строки перед
// вставкой в сообщение экранируются, иначе разметка ломается
const markdownSpecials = "_*[]()~`>#+=|{}.!-"

// EscapeMarkdown экранирует спецсимволы Markdown обратным слешем
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var moscow = mustLocation("Europe/Moscow")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// tzdata может отсутствовать в контейнере — тогда фиксированный UTC+3
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}

// BuildLeadMessage собирает текст уведомления о заявке.
// Порядок строк фиксированный: баннер, контекст формы, имя, телефон,
// тип работ, комментарий, дата по московскому времени.
func BuildLeadMessage(lead Lead, now time.Time) string {
	lines := []string{"🔔 *Новая заявка с сайта*"}

	var meta []string
	if lead.FormName != "" {
		meta = append(meta, "Форма: "+EscapeMarkdown(lead.FormName))
	}
	if lead.ServiceName != "" {
		meta = append(meta, "Услуга: "+EscapeMarkdown(lead.ServiceName))
	}
	if lead.SourceURL != "" {
		meta = append(meta, "Страница: "+EscapeMarkdown(lead.SourceURL))
	}
	if len(meta) > 0 {
		lines = append(lines, "", "📌 _"+strings.Join(meta, " | ")+"_")
	}

	lines = append(lines,
		"",
		"👤 *Имя:* "+EscapeMarkdown(lead.Name),
		"📞 *Телефон:* "+EscapeMarkdown(lead.Phone),
	)

	if lead.WorkType != "" {
		lines = append(lines, "🔧 *Тип работ:* "+EscapeMarkdown(lead.WorkType))
	}

	if lead.Comment != "" {
		lines = append(lines, "", "💬 *Сообщение клиента:*", EscapeMarkdown(lead.Comment))
	}

	stamp := now.In(moscow).Format("02.01.2006, 15:04:05")
	lines = append(lines, "", fmt.Sprintf("📅 *Дата:* %s", EscapeMarkdown(stamp)))

	return strings.Join(lines, "\n")
}
