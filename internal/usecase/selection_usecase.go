package usecase

import (
	"context"
	"errors"
	"log"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"
	"strings"
)

// ErrInvalidState means the request exists but is not in the state the
// operation requires (e.g. selecting a contractor before bidding closed).
var ErrInvalidState = errors.New("request is not in a state that allows this action")

// ISelectionUseCase resolves the customer's contractor choice on a request
// whose bidding window has closed.

type ISelectionUseCase interface {
	SelectContractor(ctx context.Context, requestID, actingCustomerID, contractorID string) (entities.RenovationRequest, error)
}

type SelectionUseCase struct {
	requestRepo   interfaces.IRenovationRequestRepository
	bidRepo       interfaces.IBidRepository
	selectionRepo interfaces.ISelectionRepository
	directory     interfaces.IIdentityDirectory
	notifier      interfaces.INotifier
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase(
	requestRepo interfaces.IRenovationRequestRepository,
	bidRepo interfaces.IBidRepository,
	selectionRepo interfaces.ISelectionRepository,
	directory interfaces.IIdentityDirectory,
	notifier interfaces.INotifier,
) *SelectionUseCase {
	return &SelectionUseCase{
		requestRepo:   requestRepo,
		bidRepo:       bidRepo,
		selectionRepo: selectionRepo,
		directory:     directory,
		notifier:      notifier,
	}
}

// SelectContractor marks the chosen contractor's bid accepted, every sibling
// bid rejected and the request contractor_selected — all in one transaction.
// A second call on the same request fails with ErrInvalidState because the
// request already left bidding_closed.
func (u *SelectionUseCase) SelectContractor(ctx context.Context, requestID, actingCustomerID, contractorID string) (entities.RenovationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	actingCustomerID = strings.TrimSpace(actingCustomerID)
	contractorID = strings.TrimSpace(contractorID)
	if requestID == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}
	if actingCustomerID == "" || contractorID == "" {
		return entities.RenovationRequest{}, ErrInvalidUserID
	}

	r, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if r.ID == "" {
		return entities.RenovationRequest{}, ErrRequestNotFound
	}
	if r.CustomerID != actingCustomerID {
		return entities.RenovationRequest{}, ErrUnauthorized
	}
	if r.Status != entities.StatusBiddingClosed {
		return entities.RenovationRequest{}, ErrInvalidState
	}

	bids, err := u.bidRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}

	var winner entities.Bid
	var rejectedContractorIDs []string
	for _, b := range bids {
		if b.ContractorID == contractorID {
			winner = b
			continue
		}
		if b.Status == entities.BidStatusPending {
			rejectedContractorIDs = append(rejectedContractorIDs, b.ContractorID)
		}
	}
	if winner.ID == "" || winner.Status != entities.BidStatusPending {
		return entities.RenovationRequest{}, ErrBidNotFound
	}

	committed, err := u.selectionRepo.CommitSelection(ctx, requestID, contractorID, winner.ID, rejectedContractorIDs)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if !committed {
		return entities.RenovationRequest{}, ErrConflict
	}
	log.Printf("[selection][usecase] contractor selected request_id=%s contractor_id=%s rejected=%d",
		requestID, contractorID, len(rejectedContractorIDs))

	u.notifyContractor(ctx, contractorID, interfaces.TemplateBidAccepted, requestID)
	for _, rejected := range rejectedContractorIDs {
		u.notifyContractor(ctx, rejected, interfaces.TemplateBidRejected, requestID)
	}

	updated, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	return updated, nil
}

func (u *SelectionUseCase) notifyContractor(ctx context.Context, contractorID, template, requestID string) {
	if u.notifier == nil {
		return
	}
	user, err := u.directory.GetUser(ctx, contractorID)
	if err != nil || user.Email == "" {
		log.Printf("[selection][usecase] notification recipient lookup failed contractor_id=%s template=%s err=%v", contractorID, template, err)
		return
	}
	if err := u.notifier.Send(ctx, user.Email, template, map[string]string{"request_id": requestID}); err != nil {
		log.Printf("[selection][usecase] notification dispatch failed contractor_id=%s template=%s err=%v", contractorID, template, err)
	}
}
