package model

import "time"

const (
	ContactNew      = "new"
	ContactRead     = "read"
	ContactReplied  = "replied"
	ContactResolved = "resolved"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Reply struct {
	Message   string     `gorm:"column:reply_message;type:text" json:"message"`
	RepliedBy string     `gorm:"column:replied_by;size:128" json:"repliedBy"`
	RepliedAt *time.Time `gorm:"column:replied_at" json:"repliedAt"`
}

type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Category  string    `gorm:"size:32;index;not null" json:"category"`
	Status    string    `gorm:"size:16;index;not null" json:"status"`
	Priority  string    `gorm:"size:16;index;not null" json:"priority"`
	Reply     Reply     `gorm:"embedded" json:"reply"`
	IPAddress string    `gorm:"size:64" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MarkReplied stamps the reply metadata on the first transition into replied.
// It reports whether the stamp happened.
func (m *ContactMessage) MarkReplied(by string, now time.Time) bool {
	if m.Reply.RepliedAt != nil {
		return false
	}
	m.Reply.RepliedBy = by
	m.Reply.RepliedAt = &now
	return true
}
