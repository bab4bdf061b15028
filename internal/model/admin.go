package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

type Admin struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Role      string     `gorm:"size:16;not null;default:admin" json:"role"`
	Name      string     `gorm:"size:128" json:"name"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
