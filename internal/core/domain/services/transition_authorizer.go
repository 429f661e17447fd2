package services

import (
	"strings"

	"deliveries/internal/core/domain/model/delivery"
)

const (
	RoleUser    = "user"
	RolePartner = "partner"
)

// TransitionAuthorizer maps caller roles to the delivery states they may
// request. It says nothing about whether the transition itself is legal;
// that is decided by delivery.State.TransitionTo.
//
//	user    -> Approved
//	partner -> Completed
//	any     -> Cancelled, Expired
//
// Roles compare case-insensitively.
type TransitionAuthorizer struct{}

func NewTransitionAuthorizer() TransitionAuthorizer {
	return TransitionAuthorizer{}
}

func (TransitionAuthorizer) CanTransition(role string, requested delivery.State) bool {
	switch requested {
	case delivery.Approved:
		return strings.EqualFold(role, RoleUser)
	case delivery.Completed:
		return strings.EqualFold(role, RolePartner)
	case delivery.Cancelled, delivery.Expired:
		return true
	default:
		return false
	}
}
