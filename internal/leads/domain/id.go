package domain

import "github.com/google/uuid"

// ID uniquely identifies a lead record.
type ID string

// NewID returns a freshly generated random identifier. No registry is kept;
// uniqueness relies on the 128-bit random space alone.
func NewID() ID {
	return ID(uuid.NewString())
}
