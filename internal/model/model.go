package model

import "strings"

// UserRecord is a single entry in the remote user directory.
//
// ID is assigned by the server and is absent until the record has been
// persisted. Password is write-only: the server never echoes it back and the
// client never redisplays a loaded value.
type UserRecord struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    int    `json:"phone,omitempty"`
}

// Identity returns the key used to reconcile this record against the
// directory: the server id when present, the email otherwise. Emails are
// assumed unique within a directory; the server does not enforce this.
func (u UserRecord) Identity() string {
	if strings.TrimSpace(u.ID) != "" {
		return strings.TrimSpace(u.ID)
	}
	return strings.TrimSpace(u.Email)
}

// SameIdentity reports whether two records refer to the same directory entry.
func (u UserRecord) SameIdentity(other UserRecord) bool {
	id := u.Identity()
	return id != "" && id == other.Identity()
}
