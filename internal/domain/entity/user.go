package entity

import "time"

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID            string
	Email         string
	Name          string
	PasswordHash  string
	IsActive      bool
	EmailVerified bool
	CreatedAt     time.Time
}
