package dto

import "time"

// CredentialsRequest payload for the local identity provider.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly minted ID token.
type TokenResponse struct {
	IDToken   string    `json:"idToken"`
	LocalID   string    `json:"localId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
