package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	SessionID     string `json:"session_id"`
}
