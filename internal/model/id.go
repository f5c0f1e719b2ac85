package model

import "github.com/google/uuid"

// NewID returns a collision-safe identifier with a short readable
// prefix, e.g. "txn_6ba7b810-9dad-11d1-80b4-00c04fd430c8".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
