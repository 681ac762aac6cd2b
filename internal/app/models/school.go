package models

import "time"

// SchoolStatus represents the subscription state of a tenant school.
type SchoolStatus string

const (
	SchoolActive    SchoolStatus = "ACTIVE"
	SchoolSuspended SchoolStatus = "SUSPENDED"
)

// School defines the tenant model based on the 'schools' table.
// Every other entity in the system is scoped to a school via school_id.
type School struct {
	ID        int64        `json:"id" db:"id" example:"1"`                         // Unique identifier for the school
	Name      string       `json:"name" db:"name" example:"Greenwood High"`        // Display name
	Subdomain string       `json:"subdomain" db:"subdomain" example:"greenwood"`   // Unique subdomain used for tenant resolution
	Plan      string       `json:"plan" db:"plan" example:"standard"`              // Subscription plan identifier
	Status    SchoolStatus `json:"status" db:"status" example:"ACTIVE"`            // Subscription status
	IsActive  bool         `json:"isActive" db:"is_active" example:"true"`         // Soft-disable flag
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`                      // Timestamp when the school was registered
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`                      // Timestamp of the last update
}
