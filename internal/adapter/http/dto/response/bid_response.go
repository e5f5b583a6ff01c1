package response

import (
	"time"

	"renovahub/internal/domain/entities"
)

type BidResponse struct {
	ID           string `json:"id"`
	RequestID    string `json:"request_id"`
	ContractorID string `json:"contractor_id"`

	Amount          float64    `json:"amount"`
	TimelineWeeks   int        `json:"timeline_weeks"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	EstimateFileKey string     `json:"estimate_file_key,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBid(b entities.Bid) BidResponse {
	return BidResponse{
		ID:              b.ID,
		RequestID:       b.RequestID,
		ContractorID:    b.ContractorID,
		Amount:          b.Amount,
		TimelineWeeks:   b.TimelineWeeks,
		StartDate:       b.StartDate,
		Notes:           b.Notes,
		EstimateFileKey: b.EstimateFileKey,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBids(bids []entities.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, FromBid(b))
	}
	return out
}
