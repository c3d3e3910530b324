package domain

// UnknownCapsterName is the display fallback when a capster reference
// cannot be resolved.
const UnknownCapsterName = "Unknown"

// Capster is a barber/stylist who can be assigned to an appointment
type Capster struct {
	ID          int64
	Name        string
	Alias       string
	Description string
	InstaAcc    string
}

// DisplayName returns the name shown in listings: name, falling back to
// alias, falling back to "Unknown".
func (c *Capster) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Alias != "" {
		return c.Alias
	}
	return UnknownCapsterName
}
