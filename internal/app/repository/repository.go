package repository

import (
	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/telegram"
)

// Контент админки хранится в одном из двух бэкендов: JSON-файлы рядом
// с приложением (file.go) или размещённая PostgreSQL (postgres.go).
// Обработчики и резолвер каталога работают только через эти интерфейсы.

// OverrideStore — карта правок услуг целиком: чтение и полная перезапись.
// Конкурентные записи не координируются, побеждает последняя.
type OverrideStore interface {
	ReadAll() (catalog.OverridesMap, error)
	WriteAll(catalog.OverridesMap) error
}

// PageTextStore — тексты страниц и конфигурационные JSON-блобы по ключу
type PageTextStore interface {
	Read(key string) (string, error)
	Write(key, value string) error
}

// SettingsStore — реквизиты Telegram-бота из админки
type SettingsStore interface {
	telegram.SettingsStore
	UpdateTelegramSettings(telegram.Settings) error
}

// CredentialStore — логин и хеш пароля администратора.
// Пустые значения без ошибки означают «ещё не сохранялись».
type CredentialStore interface {
	Credentials() (login, passwordHash string, err error)
	UpdateCredentials(login, passwordHash string) error
}

// Store — полный набор сторов контента
type Store interface {
	OverrideStore
	PageTextStore
	SettingsStore
	CredentialStore
}
