package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewBusinessID generates a short business-facing identifier such as
// "booking_1f2e3d4c5b". These ids travel in URLs and payloads; the Mongo _id
// stays internal to the storage layer.
func NewBusinessID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "_" + raw[:10]
}
