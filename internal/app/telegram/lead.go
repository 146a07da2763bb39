package telegram

import "strings"

// Lead — заявка с формы на сайте. Нигде не сохраняется:
// живёт один запрос и уходит уведомлением в Telegram.
type Lead struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	WorkType    string `json:"workType,omitempty"`
	Comment     string `json:"comment,omitempty"`
	SourceURL   string `json:"sourceUrl,omitempty"`
	FormName    string `json:"formName,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
}

// Validate проверяет обязательные поля. Формат телефона не проверяем —
// достаточно непустого значения, менеджер перезвонит и уточнит.
func (l Lead) Validate() bool {
	return strings.TrimSpace(l.Name) != "" && strings.TrimSpace(l.Phone) != ""
}
