package dto

import (
	"time"

	"github.com/careerhub/portal-service/internal/domain"
)

// RegisterRequest payload for POST /register.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Mobile          string `json:"mobile"`
	Address         string `json:"address"`
	Position        string `json:"position"`
	Experience      string `json:"experience"`
	CVURL           string `json:"cvUrl"`
	CertificatesURL string `json:"certificatesUrl"`
}

// RegisterResponse acknowledges a stored profile.
type RegisterResponse struct {
	Message     string `json:"message"`
	FirebaseUID string `json:"firebaseUid"`
	Success     bool   `json:"success"`
}

// LoginResponse returns the caller's profile.
type LoginResponse struct {
	Message     string      `json:"message"`
	FirebaseUID string      `json:"firebaseUid"`
	Profile     ProfileView `json:"profile"`
}

// ProfileView is the public representation of a profile.
type ProfileView struct {
	UID             string    `json:"uid"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Mobile          string    `json:"mobile,omitempty"`
	Address         string    `json:"address,omitempty"`
	Position        string    `json:"position,omitempty"`
	Experience      string    `json:"experience,omitempty"`
	CVURL           string    `json:"cvUrl,omitempty"`
	CertificatesURL string    `json:"certificatesUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewProfileView maps a domain profile.
func NewProfileView(p *domain.Profile) ProfileView {
	return ProfileView{
		UID:             p.UID,
		Name:            p.Name,
		Email:           p.Email,
		Role:            string(p.Role),
		Mobile:          p.Mobile,
		Address:         p.Address,
		Position:        p.Position,
		Experience:      p.Experience,
		CVURL:           p.CVURL,
		CertificatesURL: p.CertificatesURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
