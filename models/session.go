package models

import (
	"time"
)

// Session represents a row written by the external auth middleware.
// Only lookup is implemented here; the expiry cleanup sweep belongs to
// the session store collaborator.
type Session struct {
	SID    string    `db:"sid"`
	Sess   []byte    `db:"sess"`
	Expire time.Time `db:"expire"`
}

// SessionClaims is the identity claim blob stored in the session row
type SessionClaims struct {
	Sub             string  `json:"sub"`
	Email           *string `json:"email"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	ProfileImageURL *string `json:"profile_image_url"`
}
