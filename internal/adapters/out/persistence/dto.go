package persistence

import (
	"time"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

type DeliveryDTO struct {
	ID    string `gorm:"type:varchar(36);primaryKey"`
	State int    `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type AccessWindowDTO struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	DeliveryID string    `gorm:"type:varchar(36);not null"`
	StartTime  time.Time `gorm:"not null"`
	EndTime    time.Time `gorm:"not null"`
}

func (AccessWindowDTO) TableName() string {
	return "access_windows"
}

type RecipientDTO struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Name        string `gorm:"not null"`
	Address     string
	Email       string
	PhoneNumber string
}

func (RecipientDTO) TableName() string {
	return "recipients"
}

type RecipientDeliveryDTO struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	RecipientID string `gorm:"type:varchar(36);not null"`
	DeliveryID  string `gorm:"type:varchar(36);not null"`
}

func (RecipientDeliveryDTO) TableName() string {
	return "recipient_deliveries"
}

// OrderDTO keys on the order number.
type OrderDTO struct {
	ID         string `gorm:"type:varchar(255);primaryKey"`
	DeliveryID string `gorm:"type:varchar(36);not null"`
	Sender     string `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// Models lists every table row type, in migration order.
func Models() []any {
	return []any{&DeliveryDTO{}, &AccessWindowDTO{}, &RecipientDTO{}, &RecipientDeliveryDTO{}, &OrderDTO{}}
}

type uuidKey struct{}

func (uuidKey) KeyValue(id kernel.UUID) string {
	return id.String()
}

type deliveryMapper struct{ uuidKey }

func (deliveryMapper) ToRow(d delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{ID: d.ID().String(), State: int(d.State())}
}

func (deliveryMapper) ToDomain(row DeliveryDTO) (delivery.Delivery, error) {
	id, err := kernel.UUIDFromString(row.ID)
	if err != nil {
		return delivery.Delivery{}, err
	}
	return delivery.NewDelivery(id, delivery.State(row.State))
}

func (deliveryMapper) KeyOf(d delivery.Delivery) kernel.UUID {
	return d.ID()
}

type accessWindowMapper struct{ uuidKey }

func (accessWindowMapper) ToRow(w delivery.AccessWindow) AccessWindowDTO {
	return AccessWindowDTO{
		ID:         w.ID().String(),
		DeliveryID: w.DeliveryID().String(),
		StartTime:  w.StartTime().UTC(),
		EndTime:    w.EndTime().UTC(),
	}
}

func (accessWindowMapper) ToDomain(row AccessWindowDTO) (delivery.AccessWindow, error) {
	id, deliveryID, err := parseIDs(row.ID, row.DeliveryID)
	if err != nil {
		return delivery.AccessWindow{}, err
	}
	return delivery.RestoreAccessWindow(id, deliveryID, row.StartTime, row.EndTime)
}

func (accessWindowMapper) KeyOf(w delivery.AccessWindow) kernel.UUID {
	return w.ID()
}

type recipientMapper struct{ uuidKey }

func (recipientMapper) ToRow(r delivery.Recipient) RecipientDTO {
	return RecipientDTO{
		ID:          r.ID().String(),
		Name:        r.Name(),
		Address:     r.Address(),
		Email:       r.Email(),
		PhoneNumber: r.PhoneNumber(),
	}
}

func (recipientMapper) ToDomain(row RecipientDTO) (delivery.Recipient, error) {
	id, err := kernel.UUIDFromString(row.ID)
	if err != nil {
		return delivery.Recipient{}, err
	}
	return delivery.NewRecipient(id, row.Name, row.Address, row.Email, row.PhoneNumber)
}

func (recipientMapper) KeyOf(r delivery.Recipient) kernel.UUID {
	return r.ID()
}

type recipientDeliveryMapper struct{ uuidKey }

func (recipientDeliveryMapper) ToRow(l delivery.RecipientDelivery) RecipientDeliveryDTO {
	return RecipientDeliveryDTO{
		ID:          l.ID().String(),
		RecipientID: l.RecipientID().String(),
		DeliveryID:  l.DeliveryID().String(),
	}
}

func (recipientDeliveryMapper) ToDomain(row RecipientDeliveryDTO) (delivery.RecipientDelivery, error) {
	id, recipientID, err := parseIDs(row.ID, row.RecipientID)
	if err != nil {
		return delivery.RecipientDelivery{}, err
	}
	deliveryID, err := kernel.UUIDFromString(row.DeliveryID)
	if err != nil {
		return delivery.RecipientDelivery{}, err
	}
	return delivery.NewRecipientDelivery(id, recipientID, deliveryID)
}

func (recipientDeliveryMapper) KeyOf(l delivery.RecipientDelivery) kernel.UUID {
	return l.ID()
}

type orderMapper struct{}

func (orderMapper) ToRow(o delivery.Order) OrderDTO {
	return OrderDTO{ID: o.Number(), DeliveryID: o.DeliveryID().String(), Sender: o.Sender()}
}

func (orderMapper) ToDomain(row OrderDTO) (delivery.Order, error) {
	deliveryID, err := kernel.UUIDFromString(row.DeliveryID)
	if err != nil {
		return delivery.Order{}, err
	}
	return delivery.NewOrder(row.ID, deliveryID, row.Sender)
}

func (orderMapper) KeyOf(o delivery.Order) string {
	return o.Number()
}

func (orderMapper) KeyValue(number string) string {
	return number
}

func parseIDs(first, second string) (kernel.UUID, kernel.UUID, error) {
	a, err := kernel.UUIDFromString(first)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	b, err := kernel.UUIDFromString(second)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return a, b, nil
}
