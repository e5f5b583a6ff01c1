package interfaces

import (
	"context"

	"renovahub/internal/domain/entities"
)

// IIdentityDirectory is the single identity collaborator the core consults
// for roles and notification addresses. Session and cookie mechanics live
// entirely outside this service.
//
// GetUser returns the zero value when the user does not exist.
type IIdentityDirectory interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
}
