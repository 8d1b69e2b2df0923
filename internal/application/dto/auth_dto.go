package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com o token JWT e os dados básicos do cliente.
type LoginResponse struct {
	Token    string           `json:"token"`
	Customer CustomerResponse `json:"customer"`
}
