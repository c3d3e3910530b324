package domain

// Account is a registered user. Email is the unique natural key. The
// scheduling core only reads accounts to resolve a submitter identifier
// to an email; authentication and password handling live elsewhere.
type Account struct {
	ID      int64
	Email   string
	Name    string
	Phone   string
	IsAdmin bool
}
