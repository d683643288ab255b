// Package queue defines message payloads exchanged over the message broker
// and the publish/consume plumbing around them.
package queue

// userRegisteredQueue is the durable queue carrying signup events.
const userRegisteredQueue = "user.registered"

// UserRegisteredEvent is published after a successful sign-up.  Downstream
// consumers (welcome mail, analytics) get everything they need without
// querying the primary database.  The password hash is deliberately absent.
type UserRegisteredEvent struct {
	UserID       uint64 `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	RegisteredAt string `json:"registered_at"`
}
