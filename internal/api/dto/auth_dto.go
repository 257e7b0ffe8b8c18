package dto

// LoginRequest payload for the fixed-credential website login.
type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returned on successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
