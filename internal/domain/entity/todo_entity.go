package entity

import "time"

// Todo belongs to exactly one user, identified by the subject of a verified
// bearer token. Ownership never changes after creation.
type Todo struct {
	ID        string
	UserID    string
	Title     string
	Completed bool
	CreatedAt time.Time
}
