// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"daily-pulse/internal/database"
	"daily-pulse/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail 表示 email 已被註冊 (唯一約束衝突)
var ErrDuplicateEmail = errors.New("duplicate email")

// uniqueViolation PostgreSQL 唯一約束違反的 SQLSTATE
const uniqueViolation = "23505"

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, onboarding_completed, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.OnboardingCompleted,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 直接插入，不先查詢是否存在
// 重複 email 由資料庫唯一約束攔下並轉為 ErrDuplicateEmail
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func SetOnboardingCompleted(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET onboarding_completed = TRUE
		 WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetOnboardingCompleted: %w", err)
	}
	return nil
}
