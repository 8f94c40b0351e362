package domain

import "github.com/google/uuid"

// canonicalUUIDLength is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLength = 36

// IsUUID reports whether s is a UUID in canonical lexical form
// (e.g. "123e4567-e89b-12d3-a456-426614174000"). Braced, URN and
// dash-less forms are rejected so that they are treated as slugs or titles.
func IsUUID(s string) bool {
	if len(s) != canonicalUUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
