package entities

import "time"

// BidStatus represents the outcome of a contractor's bid.
//
// Bids stay pending until the customer selects a contractor; the selection
// commit flips exactly one bid to accepted and every sibling to rejected.

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is a contractor's offer on a renovation request.
//
// Storage model (DynamoDB):
//   - PK: request_id
//   - SK: contractor_id
//   - GSI1 (contractor_id-index): contractor_id
//
// The composite key enforces at most one bid per (request, contractor) pair;
// the conditional put on create turns a duplicate into a clean domain error.

type Bid struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	ContractorID string    `json:"contractor_id"`

	Amount          float64    `json:"amount"`
	TimelineWeeks   int        `json:"timeline_weeks"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	EstimateFileKey string     `json:"estimate_file_key,omitempty"`

	Status    BidStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
