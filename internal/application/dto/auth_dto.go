package dto

// RegisterRequest entrada para crear la cuenta (usuario + perfil + sociedad).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required,max=200"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest entrada para autenticación.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida de login. Token es adicional al contrato original.
type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Token   string `json:"token,omitempty"`
}
