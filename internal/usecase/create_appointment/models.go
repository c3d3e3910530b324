package create_appointment

// Request модель запроса на создание записи. Все поля, кроме даты и
// времени, опциональны.
type Request struct {
	UserID    *int64
	Name      *string
	Email     *string
	Phone     *string
	Date      string // YYYY-MM-DD, обязательное
	Time      string // HH:MM, обязательное
	Service   *string
	ServiceID *int64
	CapsterID *int64  // nil = без предпочтения капстера
	Capster   *string // отображаемое имя капстера, только для журнала истории
	Notes     *string
	Status    string // опционально; пусто или нераспознано = pending
}
