package http

import (
	"time"

	"deliveries/internal/core/domain/model/delivery"
)

// ApiResponse is the envelope every delivery endpoint answers with.
type ApiResponse[T any] struct {
	Result  T      `json:"result"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func Succeeded[T any](result T) ApiResponse[T] {
	return ApiResponse[T]{Result: result, Success: true}
}

func Failed(message string) ApiResponse[*DeliveryResponse] {
	return ApiResponse[*DeliveryResponse]{Success: false, Error: message}
}

type (
	CreateDeliveryRequest struct {
		SenderName  string         `json:"senderName"`
		RecipientID string         `json:"recipientId"`
		State       delivery.State `json:"state"`
	}

	// UpdateDeliveryRequest.State is nil when the body omits it.
	UpdateDeliveryRequest struct {
		ID    string          `json:"id"`
		State *delivery.State `json:"state"`
	}

	AccessWindowResponse struct {
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
	}

	RecipientResponse struct {
		Name        string `json:"name"`
		Address     string `json:"address"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
	}

	OrderResponse struct {
		OrderNumber string `json:"orderNumber"`
		Sender      string `json:"sender"`
	}

	DeliveryResponse struct {
		ID           string                `json:"id"`
		State        delivery.State        `json:"state"`
		AccessWindow *AccessWindowResponse `json:"accessWindow"`
		Recipient    *RecipientResponse    `json:"recipient"`
		Order        *OrderResponse        `json:"order"`
	}
)

func toDeliveryResponse(a delivery.Aggregate) *DeliveryResponse {
	resp := &DeliveryResponse{ID: a.ID.String(), State: a.State}
	if a.AccessWindow != nil {
		resp.AccessWindow = &AccessWindowResponse{
			StartTime: a.AccessWindow.StartTime(),
			EndTime:   a.AccessWindow.EndTime(),
		}
	}
	if a.Recipient != nil {
		resp.Recipient = &RecipientResponse{
			Name:        a.Recipient.Name(),
			Address:     a.Recipient.Address(),
			Email:       a.Recipient.Email(),
			PhoneNumber: a.Recipient.PhoneNumber(),
		}
	}
	if a.Order != nil {
		resp.Order = &OrderResponse{
			OrderNumber: a.Order.Number(),
			Sender:      a.Order.Sender(),
		}
	}
	return resp
}
