package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBidNotFound        = errors.New("bid not found")
	ErrBidAlreadyExists   = errors.New("contractor already has a bid on this request")
	ErrBiddingNotOpen     = errors.New("request is not accepting bids")
	ErrInvalidBidAmount   = errors.New("invalid bid amount")
	ErrInvalidBidTimeline = errors.New("invalid bid timeline")
)

// SubmitBidInput is the domain command for placing a bid on a request.
type SubmitBidInput struct {
	RequestID       string
	ContractorID    string
	Amount          float64
	TimelineWeeks   int
	StartDate       *time.Time
	Notes           string
	EstimateFileKey string
}

// IBidUseCase exposes bid submission and the bid listings the request owner,
// contractors and admin dashboards read.

type IBidUseCase interface {
	SubmitBid(ctx context.Context, input SubmitBidInput) (entities.Bid, error)
	ListBidsForRequest(ctx context.Context, requestID, actingUserID string) ([]entities.Bid, error)
	ListContractorBids(ctx context.Context, contractorID string) ([]entities.Bid, error)
}

type BidUseCase struct {
	bidRepo     interfaces.IBidRepository
	requestRepo interfaces.IRenovationRequestRepository
	directory   interfaces.IIdentityDirectory
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(
	bidRepo interfaces.IBidRepository,
	requestRepo interfaces.IRenovationRequestRepository,
	directory interfaces.IIdentityDirectory,
) *BidUseCase {
	return &BidUseCase{bidRepo: bidRepo, requestRepo: requestRepo, directory: directory}
}

// SubmitBid creates the contractor's pending bid while the parent request is
// in bidding_open. The repository's conditional put enforces one bid per
// (request, contractor) pair.
func (u *BidUseCase) SubmitBid(ctx context.Context, input SubmitBidInput) (entities.Bid, error) {
	input.RequestID = strings.TrimSpace(input.RequestID)
	input.ContractorID = strings.TrimSpace(input.ContractorID)
	if input.RequestID == "" {
		return entities.Bid{}, ErrInvalidRequestID
	}
	if input.ContractorID == "" {
		return entities.Bid{}, ErrInvalidUserID
	}
	if input.Amount <= 0 {
		return entities.Bid{}, ErrInvalidBidAmount
	}
	if input.TimelineWeeks <= 0 {
		return entities.Bid{}, ErrInvalidBidTimeline
	}

	contractor, err := u.directory.GetUser(ctx, input.ContractorID)
	if err != nil {
		return entities.Bid{}, err
	}
	if contractor.ID == "" {
		return entities.Bid{}, ErrUserNotFound
	}
	if contractor.Role != entities.RoleContractor {
		return entities.Bid{}, ErrUnauthorized
	}

	r, err := u.requestRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		return entities.Bid{}, err
	}
	if r.ID == "" {
		return entities.Bid{}, ErrRequestNotFound
	}
	if r.Status != entities.StatusBiddingOpen {
		return entities.Bid{}, ErrBiddingNotOpen
	}

	// Enforce: 1 bid per (request, contractor). The conditional put backs
	// this up against concurrent submissions.
	if existing, err := u.bidRepo.GetByRequestAndContractor(ctx, input.RequestID, input.ContractorID); err != nil {
		return entities.Bid{}, err
	} else if existing.ID != "" {
		return entities.Bid{}, ErrBidAlreadyExists
	}

	now := time.Now().UTC()
	bid := entities.Bid{
		ID:              uuid.NewString(),
		RequestID:       input.RequestID,
		ContractorID:    input.ContractorID,
		Amount:          input.Amount,
		TimelineWeeks:   input.TimelineWeeks,
		StartDate:       input.StartDate,
		Notes:           strings.TrimSpace(input.Notes),
		EstimateFileKey: strings.TrimSpace(input.EstimateFileKey),
		Status:          entities.BidStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.bidRepo.Create(ctx, bid)
	if err != nil {
		return entities.Bid{}, err
	}
	log.Printf("[bid][usecase] bid submitted request_id=%s contractor_id=%s amount=%.2f", bid.RequestID, bid.ContractorID, bid.Amount)
	return created, nil
}

// ListBidsForRequest is restricted to the request owner and admins;
// contractors never see each other's bids.
func (u *BidUseCase) ListBidsForRequest(ctx context.Context, requestID, actingUserID string) ([]entities.Bid, error) {
	requestID = strings.TrimSpace(requestID)
	actingUserID = strings.TrimSpace(actingUserID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	if actingUserID == "" {
		return nil, ErrInvalidUserID
	}

	r, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if r.ID == "" {
		return nil, ErrRequestNotFound
	}

	actor, err := u.directory.GetUser(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if actor.ID == "" {
		return nil, ErrUserNotFound
	}
	if actor.Role != entities.RoleAdmin && r.CustomerID != actingUserID {
		return nil, ErrUnauthorized
	}

	return u.bidRepo.ListByRequestID(ctx, requestID)
}

func (u *BidUseCase) ListContractorBids(ctx context.Context, contractorID string) ([]entities.Bid, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidUserID
	}
	return u.bidRepo.ListByContractorID(ctx, contractorID)
}
