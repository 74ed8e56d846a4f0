// Package uuid wraps google/uuid so that ids bind through gin's
// parameter binding.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID embeds google/uuid's UUID and adds parameter binding.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam parses a path or query parameter into the UUID. An
// empty parameter binds to Nil so that optional id parameters work.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
