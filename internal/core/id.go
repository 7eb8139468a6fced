package core

import (
	"fmt"

	"github.com/google/uuid"
)

type UUID struct {
	uuid.UUID
}

func newUUID() UUID {
	return UUID{
		uuid.New(),
	}
}

func nilUUID() UUID {
	return UUID{[16]byte{0}}
}

// ShortString ... Short string representation for easier debugging
// https://pkg.go.dev/github.com/google/UUID#UUID.String
func (id UUID) ShortString() string {
	uid := id.UUID
	// Only render first 8 bytes instead of entire sequence
	return fmt.Sprintf("%x", uid[:8])
}

// InvocationID ... Represents a non-deterministic ID that's assigned to
// every force inclusion invocation
type InvocationID struct {
	UUID UUID
}

// MakeInvocationID ... Constructs a fresh invocation ID
func MakeInvocationID() InvocationID {
	return InvocationID{UUID: newUUID()}
}

// NilInvocationID ... Returns a zero'd out or empty invocation ID
func NilInvocationID() InvocationID {
	return InvocationID{UUID: nilUUID()}
}

// ParseInvocationID ... Parses the full string form of an invocation ID
func ParseInvocationID(s string) (InvocationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilInvocationID(), fmt.Errorf("invalid invocation id %q: %w", s, err)
	}

	return InvocationID{UUID: UUID{id}}, nil
}

// String ... Returns the full string representation of an invocation ID
func (id InvocationID) String() string {
	return id.UUID.String()
}

// IsNil ... Returns true if the ID is zero'd out
func (id InvocationID) IsNil() bool {
	return id == NilInvocationID()
}

// MarshalText ... Renders the ID as its full string form in JSON payloads
func (id InvocationID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText ... Parses an ID rendered by MarshalText
func (id *InvocationID) UnmarshalText(text []byte) error {
	parsed, err := ParseInvocationID(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}
