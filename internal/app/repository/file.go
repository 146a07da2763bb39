package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/telegram"

	"github.com/sirupsen/logrus"
)

// FileStore хранит контент админки в JSON-файлах каталога данных.
// Формат файлов совместим с ручным редактированием: отступы, UTF-8.
type FileStore struct {
	dataDir string
}

const (
	overridesFile = "services-overrides.json"
	adminFile     = "admin.json"
	telegramFile  = "telegram-settings.json"
	authFile      = "admin-auth.json"
)

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// readJSON читает файл в out. Отсутствующий файл — не ошибка:
// out остаётся нетронутым (вызывающий код передаёт дефолт).
func (s *FileStore) readJSON(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Битый файл не должен ломать страницы — работаем с дефолтом
		logrus.Errorf("malformed json in %s: %v", name, err)
		return nil
	}
	return nil
}

func (s *FileStore) writeJSON(name string, in interface{}) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0o644)
}

// ============ Правки услуг ============

func (s *FileStore) ReadAll() (catalog.OverridesMap, error) {
	overrides := catalog.OverridesMap{}
	if err := s.readJSON(overridesFile, &overrides); err != nil {
		return catalog.OverridesMap{}, err
	}
	return overrides, nil
}

func (s *FileStore) WriteAll(overrides catalog.OverridesMap) error {
	return s.writeJSON(overridesFile, overrides)
}

// ============ Тексты страниц ============

type adminFileData struct {
	PageTexts map[string]string `json:"pageTexts"`
}

func (s *FileStore) readAdminFile() adminFileData {
	data := adminFileData{PageTexts: map[string]string{}}
	if err := s.readJSON(adminFile, &data); err != nil {
		logrus.Error("Error reading admin file: ", err)
	}
	if data.PageTexts == nil {
		data.PageTexts = map[string]string{}
	}
	return data
}

func (s *FileStore) Read(key string) (string, error) {
	return s.readAdminFile().PageTexts[key], nil
}

func (s *FileStore) Write(key, value string) error {
	data := s.readAdminFile()
	data.PageTexts[key] = value
	return s.writeJSON(adminFile, data)
}

// ============ Настройки Telegram ============

func (s *FileStore) TelegramSettings() (*telegram.Settings, error) {
	var settings telegram.Settings
	if err := s.readJSON(telegramFile, &settings); err != nil {
		return nil, err
	}
	if settings.BotToken == "" && settings.ChatID == "" {
		return nil, nil
	}
	return &settings, nil
}

func (s *FileStore) UpdateTelegramSettings(settings telegram.Settings) error {
	return s.writeJSON(telegramFile, settings)
}

// ============ Реквизиты администратора ============

type authFileData struct {
	Login    string `json:"login,omitempty"`
	Password string `json:"password"`
}

func (s *FileStore) Credentials() (string, string, error) {
	var data authFileData
	if err := s.readJSON(authFile, &data); err != nil {
		return "", "", err
	}
	return data.Login, data.Password, nil
}

func (s *FileStore) UpdateCredentials(login, passwordHash string) error {
	return s.writeJSON(authFile, authFileData{Login: login, Password: passwordHash})
}
