package ds

// AdminCredential — учётная запись администратора панели.
// Логин и пароль можно менять из раздела «Безопасность»; пока записи нет,
// действуют реквизиты из окружения.
type AdminCredential struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"` // SHA-1 хеш
}
