package model

import "time"

// User represents an application user record as stored in the `users`
// table.  The password is kept only as a bcrypt hash; handlers expose
// users through separate response types so the hash never acquires a
// JSON tag by accident.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique email address, normalized to lower case.
//  PasswordHash – bcrypt hashed password (empty in projections).
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
