package api

import "fmt"

// The error taxonomy for the remote user-directory boundary. Callers are
// expected to branch with errors.As: the kind of failure decides whether
// session, cache, or form state may be touched.

// AuthError is a failed login: rejected credentials or transport failure.
// Fatal to the login attempt only; the session is left untouched.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("login failed: server returned %d", e.Status)
	}
	return fmt.Sprintf("login failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError is a failed directory load. Non-fatal to the session; the
// caller resets the directory to empty rather than keeping stale contents.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching users failed: server returned %d", e.Status)
	}
	return fmt.Sprintf("fetching users failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// WriteError is a failed create or update: transport failure or server
// rejection. Non-fatal; form state is preserved so the user can retry.
type WriteError struct {
	Op     string // "create" or "update"
	Status int
	Err    error
}

func (e *WriteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s failed: server returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MissingIDError is an update attempted on a record that was never
// persisted. Distinct from WriteError: it indicates a caller/state bug, not
// a transient fault, so it is never worth retrying.
type MissingIDError struct {
	Email string
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("cannot update user %q: record has no server id", e.Email)
}
