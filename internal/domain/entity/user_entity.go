package entity

// User is the aggregate root for the credential domain.
// Passwords are stored as bcrypt hashes in PasswordHash and never leave the
// auth service boundary.
type User struct {
	ID           string
	Email        string
	PasswordHash string
}
