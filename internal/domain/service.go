package domain

// Service is a bookable offering. Name acts as the natural key for update
// and delete; appointments carry a denormalized copy of the name rather
// than a reference.
type Service struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Type        string
}
