package response

import (
	"time"

	"renovahub/internal/domain/entities"
)

type InspectionInterestResponse struct {
	RequestID       string    `json:"request_id"`
	ContractorID    string    `json:"contractor_id"`
	WillParticipate bool      `json:"will_participate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromInspectionInterest(i entities.InspectionInterest) InspectionInterestResponse {
	return InspectionInterestResponse{
		RequestID:       i.RequestID,
		ContractorID:    i.ContractorID,
		WillParticipate: i.WillParticipate,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
