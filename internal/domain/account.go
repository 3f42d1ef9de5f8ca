package domain

import "time"

// Account is an email/password credential held by the local identity provider.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
