// Package idgen generates the opaque doctor identifiers used across the
// catalog, backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Prefix is prepended to every generated doctor ID.
const Prefix = "doc-"

// alphabet keeps IDs lowercase and URL-safe.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// length is the number of random characters after the prefix.
const length = 14

// NewDoctorID returns a fresh doctor identifier. IDs are random, not
// content-derived, so a retried create produces a different ID.
func NewDoctorID() (string, error) {
	id, err := nanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return Prefix + id, nil
}
