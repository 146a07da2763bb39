package ds

// Модели контента админки для размещённого (postgres) режима хранения.
// В файловом режиме те же данные лежат в JSON-файлах каталога data/.

// ServiceOverride — строка правки услуги. Необязательные поля каталога
// сериализуются в Payload как JSON, чтобы не плодить nullable-колонки
// под каждую мелочь прайс-таблицы.
type ServiceOverride struct {
	ServiceID string `gorm:"type:varchar(100);primaryKey"`
	Payload   string `gorm:"type:jsonb;not null"`
	Deleted   bool   `gorm:"type:boolean;default:false;not null"`
}

// PageText — произвольный текст или JSON-блоб, редактируемый админкой
type PageText struct {
	Key   string `gorm:"type:varchar(100);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

// TelegramSettings — реквизиты бота для уведомлений о заявках
type TelegramSettings struct {
	ID       uint   `gorm:"primaryKey"`
	BotToken string `gorm:"type:varchar(255);not null"`
	ChatID   string `gorm:"type:varchar(100);not null"`
}
