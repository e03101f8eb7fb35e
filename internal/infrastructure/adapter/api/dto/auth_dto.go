package dto

// RegisterRequest represents the API request for user registration
type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Username      string `json:"username" binding:"required,min=3,max=32"`
	Password      string `json:"password" binding:"required,min=8"`
	WalletAddress string `json:"walletAddress"`
}

// LoginRequest represents the API request for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents the API response after register or login
type SessionResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
	Token    string `json:"token"`
}
