package interfaces

import (
	"context"

	"renovahub/internal/domain/entities"
)

// IBidRepository abstracts DynamoDB persistence for Bid.
//
// Create must fail when a bid for the same (request, contractor) pair already
// exists; GetByRequestAndContractor returns the zero value when no bid is
// found.

type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByRequestAndContractor(ctx context.Context, requestID, contractorID string) (entities.Bid, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.Bid, error)
	ListByContractorID(ctx context.Context, contractorID string) ([]entities.Bid, error)
}
