package dto

// SignupRequest represents the payload for account registration
type SignupRequest struct {
	Username   string `json:"username" binding:"required" example:"kim2021"`
	Password   string `json:"password" binding:"required,min=8" example:"secret-password"`
	Email      string `json:"email" binding:"required,email" example:"kim@dorm.ac.kr"`
	FullName   string `json:"fullName" binding:"required" example:"Kim Minjae"`
	Department string `json:"department" example:"Computer Science"`
}

// SignupResponse is returned after a successful registration
type SignupResponse struct {
	UserID int64 `json:"userId" example:"1"`
}

// LoginRequest represents the payload for login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"kim2021"`
	Password string `json:"password" binding:"required" example:"secret-password"`
}

// LoginResponse carries the issued token pair and role flags
type LoginResponse struct {
	UserID       int64  `json:"userId" example:"1"`
	IsStaff      bool   `json:"isStaff" example:"false"`
	IsSuperuser  bool   `json:"isSuperuser" example:"false"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
}

// RefreshTokenRequest represents the payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse carries the rotated token pair
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
}
