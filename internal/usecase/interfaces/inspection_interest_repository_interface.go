package interfaces

import (
	"context"

	"renovahub/internal/domain/entities"
)

// IInspectionInterestRepository abstracts DynamoDB persistence for
// InspectionInterest.
//
// Upsert creates or refreshes the (request, contractor) interest row;
// DeleteByRequestID removes every interest for a request when a scheduled
// inspection is cancelled.

type IInspectionInterestRepository interface {
	Upsert(ctx context.Context, i entities.InspectionInterest) (entities.InspectionInterest, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.InspectionInterest, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
}
