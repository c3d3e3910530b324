package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/tigerbarber/appointment-service/pkg/types"
)

// Status represents the moderation status of an appointment
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusNotApproved Status = "not approved"
)

// ErrInvalidStatus is returned when a raw value is outside the closed
// status enumeration.
var ErrInvalidStatus = errors.New("invalid appointment status")

// ParseStatus normalizes raw input to a member of the closed enumeration.
// Matching is case-insensitive; the stored form is always lowercase.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusApproved, StatusNotApproved:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// Appointment represents a booking request made by a customer.
// Date and Time are naive local wall-clock values; no timezone handling.
type Appointment struct {
	ID        int64
	UserID    *int64
	Name      *string
	Email     *string
	Phone     *string
	Date      string           // YYYY-MM-DD
	Time      types.TimeString // HH:MM
	Service   *string          // denormalized service name, not a reference
	ServiceID *int64
	CapsterID *int64 // nil = no staff preference
	Status    Status
	Notes     *string
	Timestamp time.Time

	// CapsterName is resolved at read time from the capster list.
	// It is not a stored column.
	CapsterName string
}

// HasCapster reports whether the appointment names a specific capster.
func (a *Appointment) HasCapster() bool {
	return a.CapsterID != nil
}

// IsApproved reports whether the appointment occupies its slot.
func (a *Appointment) IsApproved() bool {
	return a.Status == StatusApproved
}

// AppointmentFilter narrows an availability read: exact date, optional
// capster, is-one-of status match. An empty status set means no status
// filtering.
type AppointmentFilter struct {
	Date      string
	CapsterID *int64
	Statuses  []Status
}
