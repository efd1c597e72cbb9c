package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User usuario del sistema (tabla usuarios).
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt
	Role         string
}
