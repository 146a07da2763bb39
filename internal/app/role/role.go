package role

// Role — роль пользователя в системе
type Role int

const (
	// Guest — неавторизованный посетитель сайта
	Guest Role = iota
	// Admin — администратор панели управления контентом
	Admin
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	default:
		return "guest"
	}
}
