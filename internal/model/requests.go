package model

// RegisterRequest carries registration form input.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest carries login credentials. Never persisted.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
