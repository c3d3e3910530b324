package update_appointment

// Request модель запроса на изменение записи. Все поля опциональны:
// nil означает «оставить как есть».
type Request struct {
	Name      *string
	Email     *string
	Phone     *string
	Date      *string // YYYY-MM-DD
	Time      *string // HH:MM
	Service   *string
	ServiceID *int64
	CapsterID *int64
	Notes     *string
	Status    *string
}
