// File: internal/dto/auth_request.go
package dto

// AuthRequest 認證端點的統一請求格式，依 action 分派
// register/login 使用 email 與 password，verify 使用 token
// swagger:model dto.AuthRequest
type AuthRequest struct {
	Action   string `json:"action" validate:"required" example:"login"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Secret123!"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}
