package interfaces

import (
	"context"
	"time"

	"renovahub/internal/domain/entities"
)

// RequestPatch carries the derived fields written together with a status
// change. Nil pointers leave the attribute untouched; ClearInspection removes
// the inspection and bidding-window attributes instead.
type RequestPatch struct {
	InspectionDate       *time.Time
	InspectionNotes      *string
	BiddingStartDate     *time.Time
	BiddingEndDate       *time.Time
	SelectedContractorID *string
	ClearInspection      bool
}

// IRenovationRequestRepository abstracts DynamoDB persistence for
// RenovationRequest.
//
// UpdateStatusIf is the optimistic-concurrency primitive: the write only
// succeeds while the stored status still equals expected. A zero-value
// result with a nil error means the conditional check failed (the caller
// lost a race) — the record is left untouched.

type IRenovationRequestRepository interface {
	Create(ctx context.Context, r entities.RenovationRequest) (entities.RenovationRequest, error)
	GetByID(ctx context.Context, id string) (entities.RenovationRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.RenovationRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.RenovationRequest, error)
	UpdateStatusIf(ctx context.Context, id string, expected, next entities.RequestStatus, patch RequestPatch) (entities.RenovationRequest, error)
}
