package core

import "github.com/google/uuid"

// ID uniquely identifies an entity. It is a UUIDv4 under the hood.
type ID struct {
	uuid uuid.UUID
}

// NewID generates a fresh random ID.
func NewID() ID {
	return ID{uuid: uuid.New()}
}

// ParseID parses an ID from its string form.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID{uuid: u}, nil
}

// String returns the canonical string form of the ID.
func (id ID) String() string {
	return id.uuid.String()
}

// IsZero reports whether the ID is the zero value (i.e. unset).
func (id ID) IsZero() bool {
	return id.uuid == uuid.UUID{}
}
