// File: internal/repository/settings.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"daily-pulse/internal/database"
)

// GetUserSettings 以 user_id 取出指標選擇與 onboarding 狀態
// onboarding_completed 存於 users，透過 JOIN 一次取回
// 查無資料時回傳 pgx.ErrNoRows (包裝後)，由呼叫端轉為預設值
func GetUserSettings(ctx context.Context, db database.DB, userID int) ([]any, bool, error) {
	row := db.QueryRow(ctx,
		`SELECT user_settings.selected_metrics, users.onboarding_completed
		 FROM user_settings
		 JOIN users ON users.id = user_settings.user_id
		 WHERE user_settings.user_id = $1`,
		userID,
	)
	var (
		metricsJSON []byte
		onboarding  bool
	)
	if err := row.Scan(&metricsJSON, &onboarding); err != nil {
		return nil, false, fmt.Errorf("GetUserSettings: %w", err)
	}

	var metrics []any
	if err := json.Unmarshal(metricsJSON, &metrics); err != nil {
		return nil, false, fmt.Errorf("GetUserSettings: %w", err)
	}
	return metrics, onboarding, nil
}

// UpsertUserSettings 以 user_id 為鍵 insert-or-update
// 已存在時覆寫 selected_metrics 並更新 updated_at
func UpsertUserSettings(ctx context.Context, db database.DB, userID int, metrics []any) error {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("UpsertUserSettings: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO user_settings (user_id, selected_metrics)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id)
		 DO UPDATE SET
		     selected_metrics = EXCLUDED.selected_metrics,
		     updated_at = CURRENT_TIMESTAMP`,
		userID,
		metricsJSON,
	)
	if err != nil {
		return fmt.Errorf("UpsertUserSettings: %w", err)
	}
	return nil
}
