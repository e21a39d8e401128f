// Package session holds server-side login state. A successful login captures
// an immutable snapshot of the user and files it under an opaque token; the
// token is all the client ever sees. Profile edits after login are invisible
// until re-login. There is no expiry policy; entries live until logout or,
// for the memory backend, process exit.
package session

import (
	"context"

	"energy-tracker/app/models"
)

// Snapshot is the authenticated-user state captured at login time. It is a
// value copy, deliberately not joined back to the users table on resolve.
type Snapshot struct {
	UserID   uint        `json:"user_id"`
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Location string      `json:"location"`
	Role     models.Role `json:"role"`
}

type Store interface {
	// Create files the snapshot and returns a fresh unguessable token.
	Create(ctx context.Context, snap Snapshot) (string, error)
	// Resolve returns the snapshot for token. An unknown token is not an
	// error; ok is false and the caller treats the request as anonymous.
	Resolve(ctx context.Context, token string) (Snapshot, bool, error)
	// Destroy removes the session. Destroying an absent token is a no-op.
	Destroy(ctx context.Context, token string) error
}
