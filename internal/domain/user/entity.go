package user

import (
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/password"
)

// Account is one staff login. Accounts are provisioned out of band in the
// users file; there is no self-registration.
type Account struct {
	Username     string
	PasswordHash string
}

func NewAccount(username, passwordHash string) Account {
	return Account{Username: username, PasswordHash: passwordHash}
}

// VerifyPassword checks a plaintext password against the stored bcrypt hash.
func (a Account) VerifyPassword(plain string) error {
	return password.Compare(a.PasswordHash, plain)
}
