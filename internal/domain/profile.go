package domain

import "time"

// ProfileRole is the portal role chosen at registration.
type ProfileRole string

// ProfileRoleAdmin grants access to the meeting approval endpoints when admin enforcement is on.
const ProfileRoleAdmin ProfileRole = "admin"

// Profile is the registered portal profile keyed by the identity subject.
type Profile struct {
	UID             string
	Name            string
	Email           string
	Role            ProfileRole
	Mobile          string
	Address         string
	Position        string
	Experience      string
	CVURL           string
	CertificatesURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
