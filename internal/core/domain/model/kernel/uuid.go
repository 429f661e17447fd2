package kernel

import (
	"fmt"

	"deliveries/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero (nil) UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies deliveries, access windows, recipients and recipient links.
// It is immutable and comparable, so it can be used as a map key.
//
//	id := kernel.NewUUID()
//	same, err := kernel.UUIDFromString(id.String())
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random version 4 UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn-prefixed or unhyphenated
// text form. It does not reject the nil UUID; call Validate for that.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// MustUUIDFromString is UUIDFromString for compile-time constants such as seed ids.
func MustUUIDFromString(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUIDFromBytes builds a UUID from exactly 16 bytes and rejects the nil UUID.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID array (a copy).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) IsNil() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsNil() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText renders the canonical form, so UUID serialises as a JSON string.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
