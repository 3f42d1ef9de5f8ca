package domain

import "time"

// MeetingStatus enumerates lifecycle states for meeting requests.
type MeetingStatus string

const (
	MeetingStatusPending  MeetingStatus = "pending"
	MeetingStatusApproved MeetingStatus = "approved"
	MeetingStatusDeclined MeetingStatus = "declined"
)

// Valid reports whether s is a known status.
func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingStatusPending, MeetingStatusApproved, MeetingStatusDeclined:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s MeetingStatus) Terminal() bool {
	return s == MeetingStatusApproved || s == MeetingStatusDeclined
}

// MeetingRequest is a request for a meeting awaiting an approve/decline decision.
// Date and Time are set only once approved; Reason only once declined.
type MeetingRequest struct {
	ID          string
	RequesterID string
	Name        string
	Email       string
	Purpose     string
	Status      MeetingStatus
	Date        string
	Time        string
	Reason      string
	DecidedBy   string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MeetingTransition is the update written when a pending meeting is decided.
type MeetingTransition struct {
	Status    MeetingStatus
	Date      string
	Time      string
	Reason    string
	DecidedBy string
	DecidedAt time.Time
}
