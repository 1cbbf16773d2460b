package repository

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns an opaque identifier of the form "{prefix}_" followed by 8 hex characters.
func GenerateID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:8]
}
