// Package models defines server-side records shared by repositories,
// services and transports.
package models

import "time"

// User is an account. PasswordHash is a bcrypt hash and never leaves the
// server; AttachmentRef points at the current profile photo in the blob
// store and is empty until the first upload.
type User struct {
	ID            string
	Email         string
	Name          string
	PasswordHash  string
	AttachmentRef string
	CreatedAt     time.Time
}
