// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a registered account.
// The password hash never leaves the server: it is excluded from JSON output.
type User struct {
	ID           int64     `json:"id"`         // Autoincrementing identifier assigned by the store.
	FirstName    string    `json:"first_name"` // Required; validated as non-empty on every write.
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"` // Login identifier; unique across all users.
	PasswordHash string    `json:"-"`     // bcrypt hash of the account password.
	Admin        bool      `json:"admin"` // Stored flag; carried but grants no extra rights.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
