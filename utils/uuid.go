package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used for listing and
// token ids.
func GenerateID() string {
	return uuid.New().String()
}

// GenerateTxRef returns a per-operation reference stamped onto participation
// events.
func GenerateTxRef() string {
	return uuid.New().String()
}
