package models

import "time"

// Account is a persisted user record. PasswordHash always holds a bcrypt
// hash; plaintext passwords never reach this type.
type Account struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicAccount is the subset of Account that may leave the server.
type PublicAccount struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Public strips everything but the display fields.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
	}
}
