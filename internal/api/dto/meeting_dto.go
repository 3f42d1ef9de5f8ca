package dto

import (
	"time"

	"github.com/careerhub/portal-service/internal/domain"
)

// ApproveMeetingRequest payload for PUT /admin/meetings/:id/approve.
type ApproveMeetingRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// DeclineMeetingRequest payload for PUT /admin/meetings/:id/decline.
type DeclineMeetingRequest struct {
	Reason string `json:"reason"`
}

// CreateMeetingRequest payload for POST /meetings.
type CreateMeetingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// DecisionResponse confirms an approve or decline.
type DecisionResponse struct {
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Meeting MeetingView `json:"meeting"`
}

// MeetingView is the public representation of a meeting request.
type MeetingView struct {
	ID          string     `json:"id"`
	RequesterID string     `json:"requesterId"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Purpose     string     `json:"purpose"`
	Status      string     `json:"status"`
	Date        string     `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	DecidedBy   string     `json:"decidedBy,omitempty"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewMeetingView maps a domain meeting.
func NewMeetingView(m *domain.MeetingRequest) MeetingView {
	return MeetingView{
		ID:          m.ID,
		RequesterID: m.RequesterID,
		Name:        m.Name,
		Email:       m.Email,
		Purpose:     m.Purpose,
		Status:      string(m.Status),
		Date:        m.Date,
		Time:        m.Time,
		Reason:      m.Reason,
		DecidedBy:   m.DecidedBy,
		DecidedAt:   m.DecidedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PageMeta describes a paginated listing.
type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Count    int `json:"count"`
}
