package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ResultID identifies one generated roster held in the result store
type ResultID ID

// NewResultID creates a fresh result identifier
func NewResultID() ResultID {
	return ResultID(NewID())
}

// String returns the string representation
func (id ResultID) String() string { return ID(id).String() }

// ParseResultID parses a string into ResultID
func ParseResultID(s string) (ResultID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("result ID cannot be empty")
	}
	return ResultID(strings.TrimSpace(s)), nil
}
