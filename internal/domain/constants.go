package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ConflictStatuses are the statuses a candidate slot is checked against.
// Only an approved appointment blocks a slot: two pending requests may
// coexist, the first approval wins.
var ConflictStatuses = []Status{StatusApproved}

// AvailabilityStatuses are the statuses the booking UI treats as occupying
// a slot when rendering availability.
var AvailabilityStatuses = []Status{StatusPending, StatusApproved}

// ValidStatuses is the closed status enumeration.
var ValidStatuses = []Status{StatusPending, StatusApproved, StatusNotApproved}
