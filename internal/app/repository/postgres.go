package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"heavyprofile/internal/app/catalog"
	"heavyprofile/internal/app/ds"
	"heavyprofile/internal/app/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresStore хранит контент админки в размещённой PostgreSQL
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц контента
	err = db.AutoMigrate(
		&ds.ServiceOverride{},
		&ds.PageText{},
		&ds.TelegramSettings{},
		&ds.AdminCredential{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// ============ Правки услуг ============

func (s *PostgresStore) ReadAll() (catalog.OverridesMap, error) {
	var rows []ds.ServiceOverride
	if err := s.db.Find(&rows).Error; err != nil {
		return catalog.OverridesMap{}, err
	}

	overrides := make(catalog.OverridesMap, len(rows))
	for _, row := range rows {
		var ov catalog.ServiceOverride
		if err := json.Unmarshal([]byte(row.Payload), &ov); err != nil {
			// Битую строку пропускаем, остальной каталог должен работать
			logrus.Errorf("malformed override payload for %s: %v", row.ServiceID, err)
			continue
		}
		ov.ID = row.ServiceID
		ov.Deleted = row.Deleted
		overrides[row.ServiceID] = ov
	}
	return overrides, nil
}

func (s *PostgresStore) WriteAll(overrides catalog.OverridesMap) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&ds.ServiceOverride{}).Error; err != nil {
			return err
		}
		for id, ov := range overrides {
			payload, err := json.Marshal(ov)
			if err != nil {
				return err
			}
			row := ds.ServiceOverride{
				ServiceID: id,
				Payload:   string(payload),
				Deleted:   ov.Deleted,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ============ Тексты страниц ============

func (s *PostgresStore) Read(key string) (string, error) {
	var row ds.PageText
	err := s.db.Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.Value, nil
}

func (s *PostgresStore) Write(key, value string) error {
	row := ds.PageText{Key: key, Value: value}
	return s.db.Save(&row).Error
}

// ============ Настройки Telegram ============

func (s *PostgresStore) TelegramSettings() (*telegram.Settings, error) {
	var row ds.TelegramSettings
	err := s.db.First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &telegram.Settings{BotToken: row.BotToken, ChatID: row.ChatID}, nil
}

func (s *PostgresStore) UpdateTelegramSettings(settings telegram.Settings) error {
	var row ds.TelegramSettings
	err := s.db.First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row.BotToken = settings.BotToken
	row.ChatID = settings.ChatID
	return s.db.Save(&row).Error
}

// ============ Реквизиты администратора ============

func (s *PostgresStore) Credentials() (string, string, error) {
	var row ds.AdminCredential
	err := s.db.First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil
		}
		return "", "", err
	}
	return row.Login, row.Password, nil
}

func (s *PostgresStore) UpdateCredentials(login, passwordHash string) error {
	var row ds.AdminCredential
	err := s.db.First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row.Login = login
	row.Password = passwordHash
	return s.db.Save(&row).Error
}
