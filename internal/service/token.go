// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"daily-pulse/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL 令牌有效期為 30 天
const TokenTTL = 30 * 24 * time.Hour

// CustomClaims 定義 JWT 負載內容
type CustomClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService 以注入的密鑰簽發與驗證 JWT (HS256)
// 密鑰來自啟動時載入的設定，非環境變數
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 建立 TokenService，ttl 為 0 時使用預設 TokenTTL
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = TokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue 依據使用者資訊產生 JWT
func (s *TokenService) Issue(user model.User) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析 JWT 令牌
// 簽章錯誤與逾期皆回傳錯誤，呼叫端不區分兩者
func (s *TokenService) Verify(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
