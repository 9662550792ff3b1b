// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the single identity record in the system. Accounts are never
// physically deleted; a removed account keeps its row with IsActive false.
type User struct {
	ID           int64     // Numeric identifier assigned by the database at creation.
	Email        string    // Unique login identifier, stored case-sensitively.
	Fullname     string    // Optional display name.
	Phone        string    // Optional contact phone.
	PasswordHash string    // bcrypt hash of the user's password. Never serialized.
	IsActive     bool      // False once the account has been deactivated.
	IsAdmin      bool      // Grants access to administrative operations.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
