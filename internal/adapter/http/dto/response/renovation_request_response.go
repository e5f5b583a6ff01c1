package response

import (
	"time"

	"renovahub/internal/domain/entities"
)

type RenovationRequestResponse struct {
	ID          string   `json:"id"`
	CustomerID  string   `json:"customer_id"`
	Category    string   `json:"category"`
	BudgetRange string   `json:"budget_range"`
	Timeline    string   `json:"timeline"`
	PostalCode  string   `json:"postal_code"`
	Address     string   `json:"address,omitempty"`
	Description string   `json:"description"`
	PhotoKeys   []string `json:"photo_keys,omitempty"`

	Status               string     `json:"status"`
	InspectionDate       *time.Time `json:"inspection_date,omitempty"`
	InspectionNotes      string     `json:"inspection_notes,omitempty"`
	BiddingStartDate     *time.Time `json:"bidding_start_date,omitempty"`
	BiddingEndDate       *time.Time `json:"bidding_end_date,omitempty"`
	SelectedContractorID string     `json:"selected_contractor_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRenovationRequest(r entities.RenovationRequest) RenovationRequestResponse {
	return RenovationRequestResponse{
		ID:                   r.ID,
		CustomerID:           r.CustomerID,
		Category:             string(r.Category),
		BudgetRange:          string(r.BudgetRange),
		Timeline:             string(r.Timeline),
		PostalCode:           r.PostalCode,
		Address:              r.Address,
		Description:          r.Description,
		PhotoKeys:            r.PhotoKeys,
		Status:               string(r.Status),
		InspectionDate:       r.InspectionDate,
		InspectionNotes:      r.InspectionNotes,
		BiddingStartDate:     r.BiddingStartDate,
		BiddingEndDate:       r.BiddingEndDate,
		SelectedContractorID: r.SelectedContractorID,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func FromRenovationRequests(requests []entities.RenovationRequest) []RenovationRequestResponse {
	out := make([]RenovationRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRenovationRequest(r))
	}
	return out
}
