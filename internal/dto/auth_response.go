// File: internal/dto/auth_response.go
package dto

// UserInfo 回應中附帶的使用者基本資料
// swagger:model dto.UserInfo
type UserInfo struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
}

// AuthResponse register/login 成功時回傳的令牌與使用者
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// VerifyResponse verify 成功時回傳令牌內的使用者
// swagger:model dto.VerifyResponse
type VerifyResponse struct {
	Valid bool     `json:"valid" example:"true"`
	User  UserInfo `json:"user"`
}
