package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

type Event struct {
	ID                   uint64                      `gorm:"primaryKey" json:"id"`
	Title                string                      `gorm:"size:255;not null" json:"title"`
	Description          string                      `gorm:"type:text" json:"description"`
	Date                 time.Time                   `gorm:"index" json:"date"`
	Time                 string                      `gorm:"size:32" json:"time"`
	Location             string                      `gorm:"size:255" json:"location"`
	Category             string                      `gorm:"size:64;index" json:"category"`
	RegistrationRequired bool                        `json:"registrationRequired"`
	MaxParticipants      int                         `gorm:"not null;default:0" json:"maxParticipants"`
	CurrentParticipants  int                         `gorm:"not null;default:0" json:"currentParticipants"`
	Status               string                      `gorm:"size:16;index;not null" json:"status"`
	FeaturedImage        string                      `gorm:"size:512" json:"featuredImage"`
	Gallery              datatypes.JSONSlice[string] `json:"gallery"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

// DeriveStatus recomputes the status from the event date. A past date always
// means completed; otherwise an explicit ongoing/cancelled status survives and
// anything else falls back to upcoming.
func (e *Event) DeriveStatus(now time.Time) {
	if e.Date.Before(now) {
		e.Status = EventCompleted
		return
	}
	switch e.Status {
	case EventOngoing, EventCancelled:
	default:
		e.Status = EventUpcoming
	}
}
