package model

import "time"

type User struct {
	ID                  int       `db:"id" json:"id"`
	Email               string    `db:"email" json:"email"`
	PasswordHash        string    `db:"password_hash" json:"-"`
	OnboardingCompleted bool      `db:"onboarding_completed" json:"onboarding_completed"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}
