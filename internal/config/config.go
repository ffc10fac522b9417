// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config 啟動時一次載入的服務設定
// 由 cmd/service 建立後注入各層，handler 內不再讀取環境變數
type Config struct {
	DatabaseURL   string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Port          string
	WorkerCount   int
}

// Load 從環境變數載入設定，必要變數缺漏時回傳錯誤
func Load() (*Config, error) {
	cfg := &Config{
		Port:        "8080",
		WorkerCount: 1,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	// Redis 密碼允許為空字串
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.RedisDB = idx
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return nil, fmt.Errorf("無效的 WORKER_COUNT: %v", v)
		}
		cfg.WorkerCount = c
	}

	return cfg, nil
}
