package delivery

import (
	"strings"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
)

// SampleRecipientID is the recipient seeded into a fresh store.
var SampleRecipientID = kernel.MustUUIDFromString("3fa85f64-5717-4562-b3fc-2c963f66afa6")

// Recipient is the person a parcel is addressed to. Recipients are
// provisioned outside this service and are only read here.
type Recipient struct {
	id          kernel.UUID
	name        string
	address     string
	email       string
	phoneNumber string
}

// NewRecipient requires an id and a non-blank name; the contact fields are
// optional.
func NewRecipient(id kernel.UUID, name, address, email, phoneNumber string) (Recipient, error) {
	if err := id.Validate(); err != nil {
		return Recipient{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Recipient{}, errs.NewValueIsRequiredError("name")
	}
	return Recipient{
		id:          id,
		name:        name,
		address:     address,
		email:       email,
		phoneNumber: phoneNumber,
	}, nil
}

// SampleRecipient returns the seed recipient.
func SampleRecipient() Recipient {
	r, _ := NewRecipient(SampleRecipientID, "Mr John Smith", "123 Sample St.", "j.smith@example.com", "+44 123 456 789")
	return r
}

func (r Recipient) ID() kernel.UUID {
	return r.id
}

func (r Recipient) Name() string {
	return r.name
}

func (r Recipient) Address() string {
	return r.address
}

func (r Recipient) Email() string {
	return r.email
}

func (r Recipient) PhoneNumber() string {
	return r.phoneNumber
}
