package dto

// RegisterRequest body para POST /api/user/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"rol" validate:"omitempty,oneof=admin operador"`
}

// LoginRequest body para POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID    int64  `json:"id_usuario"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

// LoginResponse token JWT emitido.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
