package dto

// ===== Requests =====

type RegisterRequest struct {
	Username  string `json:"username" example:"testuser"`
	Password  string `json:"password" example:"password123"`
	IsPrivate bool   `json:"isPrivate" example:"false"`
}

type LoginRequest struct {
	Username string `json:"username" example:"testuser"`
	Password string `json:"password" example:"password123"`
}

// ===== Responses =====

type LoginResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message" example:"user created"`
}
