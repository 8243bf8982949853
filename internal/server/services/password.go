package services

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the fixed bcrypt work factor for stored passwords.
const passwordHashCost = 8

// preparePassword turns a plaintext password into the form persisted on an
// account. It must run before the account reaches the store.
func preparePassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// dummyHash is compared against when the email is unknown so that the
// response time does not reveal whether an account exists.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("dummy-Passw0rd"), passwordHashCost)
	return h
})

func checkPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
