package model

// User represents a registered account.
//
// The password is stored and compared verbatim; this mirrors the observed
// behaviour of the service and is a known weakness of the contract.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
