package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces fresh record identifiers.
type IDGenerator func() string

// NextID returns a random 32 character hex identifier.
func NextID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
