package models

import (
	"fmt"
	"time"
)

// Role enum
type Role string

const (
	RoleClinician Role = "clinician"
	RoleClient    Role = "client"
)

// User represents a user in the system
type User struct {
	BaseModel
	Name        string     `gorm:"size:255;not null" json:"name"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Role        Role       `gorm:"size:20;default:'client'" json:"role"`

	// Relations (not always preloaded)
	EmrRecord *EmrRecord `gorm:"foreignKey:UserID" json:"-"`
}

// ClientWithLastVisit is the listing shape for the client picker: id, name and a
// human-readable label derived from the stored last visit date.
type ClientWithLastVisit struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LastVisitLabel string `json:"lastVisitLabel"`
}

// LastVisitLabel renders a visit date as "Today", "N days ago" or "No visit yet".
func LastVisitLabel(lastVisit *time.Time, now time.Time) string {
	if lastVisit == nil {
		return "No visit yet"
	}
	days := int(now.Sub(*lastVisit).Hours() / 24)
	if days <= 0 {
		return "Today"
	}
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}
