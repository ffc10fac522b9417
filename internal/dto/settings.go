// File: internal/dto/settings.go
package dto

import "encoding/json"

// SaveSettingsRequest 儲存指標選擇的請求格式
// metrics 必須是 JSON 陣列，未提供時視為空陣列，內容不做驗證
// 以 RawMessage 保留原文，顯式 null 與非陣列由 handler 拒絕
// swagger:model dto.SaveSettingsRequest
type SaveSettingsRequest struct {
	Metrics json.RawMessage `json:"metrics"`
}

// SettingsResponse GET 設定的回應格式
// 未儲存過設定時回傳空陣列與 false
// swagger:model dto.SettingsResponse
type SettingsResponse struct {
	Metrics             []any `json:"metrics"`
	OnboardingCompleted bool  `json:"onboarding_completed" example:"false"`
}

// SaveSettingsResponse POST 設定的回應格式，原樣回傳提交的 metrics
// swagger:model dto.SaveSettingsResponse
type SaveSettingsResponse struct {
	Success bool  `json:"success" example:"true"`
	Metrics []any `json:"metrics"`
}
