package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Status is the lifecycle state of an entity that is never physically removed.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// IsActive reports whether the entity is visible to read paths.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// StatusFromBool maps the persisted status column onto a lifecycle state.
func StatusFromBool(active bool) Status {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// Bool returns the persisted representation of the status.
func (s Status) Bool() bool {
	return s.IsActive()
}
