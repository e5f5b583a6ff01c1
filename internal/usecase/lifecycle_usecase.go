package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound = errors.New("renovation request not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnauthorized    = errors.New("user is not allowed to perform this action")

	// ErrInvalidTransition is always wrapped with the current and requested
	// statuses; match it with errors.Is.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict means a conditional update lost a concurrency race: the
	// request changed between the read and the write. Callers may re-read
	// and decide whether to retry.
	ErrConflict = errors.New("request was modified concurrently")

	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidBudgetRange    = errors.New("invalid budget range")
	ErrInvalidTimeline       = errors.New("invalid timeline preference")
	ErrInvalidDescription    = errors.New("invalid description")
	ErrInvalidInspectionDate = errors.New("invalid inspection date")
)

func invalidTransition(from, to entities.RequestStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// CreateRequestInput is the domain command for opening a renovation request.
type CreateRequestInput struct {
	CustomerID  string
	Category    entities.RequestCategory
	BudgetRange entities.BudgetRange
	Timeline    entities.TimelinePreference
	PostalCode  string
	Address     string
	Description string
	PhotoKeys   []string
}

// IRequestLifecycleUseCase is the single authority over renovation request
// status. No other component writes the status attribute.
//
// Every transition is applied through a conditional update keyed on the
// status observed during validation; losing that race surfaces as
// ErrConflict and leaves the record untouched.

type IRequestLifecycleUseCase interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (entities.RenovationRequest, error)
	GetRequestByID(ctx context.Context, id string) (entities.RenovationRequest, error)
	ListCustomerRequests(ctx context.Context, customerID string) ([]entities.RenovationRequest, error)
	ListRequestsByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.RenovationRequest, error)

	RegisterInterest(ctx context.Context, requestID, contractorID string, willParticipate bool) (entities.InspectionInterest, error)
	ScheduleInspection(ctx context.Context, requestID string, inspectionDate time.Time, notes string) (entities.RenovationRequest, error)
	CancelInspection(ctx context.Context, requestID, actingCustomerID string) (entities.RenovationRequest, error)
	OpenBidding(ctx context.Context, requestID string) (entities.RenovationRequest, error)
	CloseBidding(ctx context.Context, requestID string) (entities.RenovationRequest, error)
	CompleteRequest(ctx context.Context, requestID string) (entities.RenovationRequest, error)
	WithdrawRequest(ctx context.Context, requestID string) (entities.RenovationRequest, error)
}

type RequestLifecycleUseCase struct {
	requestRepo  interfaces.IRenovationRequestRepository
	interestRepo interfaces.IInspectionInterestRepository
	directory    interfaces.IIdentityDirectory
	notifier     interfaces.INotifier
	clock        func() time.Time
}

var _ IRequestLifecycleUseCase = (*RequestLifecycleUseCase)(nil)

// LifecycleOption customizes the use case instance.
type LifecycleOption func(*RequestLifecycleUseCase)

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) LifecycleOption {
	return func(u *RequestLifecycleUseCase) {
		if clock != nil {
			u.clock = clock
		}
	}
}

func NewRequestLifecycleUseCase(
	requestRepo interfaces.IRenovationRequestRepository,
	interestRepo interfaces.IInspectionInterestRepository,
	directory interfaces.IIdentityDirectory,
	notifier interfaces.INotifier,
	opts ...LifecycleOption,
) *RequestLifecycleUseCase {
	u := &RequestLifecycleUseCase{
		requestRepo:  requestRepo,
		interestRepo: interestRepo,
		directory:    directory,
		notifier:     notifier,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *RequestLifecycleUseCase) CreateRequest(ctx context.Context, input CreateRequestInput) (entities.RenovationRequest, error) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	if input.CustomerID == "" {
		return entities.RenovationRequest{}, ErrInvalidUserID
	}
	if !entities.ValidCategory(input.Category) {
		return entities.RenovationRequest{}, ErrInvalidCategory
	}
	if !entities.ValidBudgetRange(input.BudgetRange) {
		return entities.RenovationRequest{}, ErrInvalidBudgetRange
	}
	if !entities.ValidTimeline(input.Timeline) {
		return entities.RenovationRequest{}, ErrInvalidTimeline
	}
	if strings.TrimSpace(input.Description) == "" {
		return entities.RenovationRequest{}, ErrInvalidDescription
	}

	if err := u.requireRole(ctx, input.CustomerID, entities.RoleCustomer); err != nil {
		return entities.RenovationRequest{}, err
	}

	now := u.clock().UTC()
	r := entities.RenovationRequest{
		ID:          uuid.NewString(),
		CustomerID:  input.CustomerID,
		Category:    input.Category,
		BudgetRange: input.BudgetRange,
		Timeline:    input.Timeline,
		PostalCode:  strings.TrimSpace(input.PostalCode),
		Address:     strings.TrimSpace(input.Address),
		Description: strings.TrimSpace(input.Description),
		PhotoKeys:   input.PhotoKeys,
		Status:      entities.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.requestRepo.Create(ctx, r)
}

func (u *RequestLifecycleUseCase) GetRequestByID(ctx context.Context, id string) (entities.RenovationRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}

	r, err := u.requestRepo.GetByID(ctx, id)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if r.ID == "" {
		return entities.RenovationRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestLifecycleUseCase) ListCustomerRequests(ctx context.Context, customerID string) ([]entities.RenovationRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidUserID
	}
	return u.requestRepo.ListByCustomerID(ctx, customerID)
}

func (u *RequestLifecycleUseCase) ListRequestsByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.RenovationRequest, error) {
	return u.requestRepo.ListByStatus(ctx, status)
}

// RegisterInterest upserts the contractor's inspection-interest row. The
// first affirmative interest moves an open request to inspection_pending;
// losing that transition race is benign because another interest already
// moved it.
func (u *RequestLifecycleUseCase) RegisterInterest(ctx context.Context, requestID, contractorID string, willParticipate bool) (entities.InspectionInterest, error) {
	requestID = strings.TrimSpace(requestID)
	contractorID = strings.TrimSpace(contractorID)
	if requestID == "" {
		return entities.InspectionInterest{}, ErrInvalidRequestID
	}
	if contractorID == "" {
		return entities.InspectionInterest{}, ErrInvalidUserID
	}

	if err := u.requireRole(ctx, contractorID, entities.RoleContractor); err != nil {
		return entities.InspectionInterest{}, err
	}

	r, err := u.GetRequestByID(ctx, requestID)
	if err != nil {
		return entities.InspectionInterest{}, err
	}
	switch r.Status {
	case entities.StatusOpen, entities.StatusInspectionPending, entities.StatusInspectionScheduled:
	default:
		return entities.InspectionInterest{}, invalidTransition(r.Status, entities.StatusInspectionPending)
	}

	now := u.clock().UTC()
	interest, err := u.interestRepo.Upsert(ctx, entities.InspectionInterest{
		RequestID:       requestID,
		ContractorID:    contractorID,
		WillParticipate: willParticipate,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return entities.InspectionInterest{}, err
	}

	if r.Status == entities.StatusOpen && willParticipate {
		updated, err := u.requestRepo.UpdateStatusIf(ctx, requestID, entities.StatusOpen, entities.StatusInspectionPending, interfaces.RequestPatch{})
		if err != nil {
			return entities.InspectionInterest{}, err
		}
		if updated.ID == "" {
			log.Printf("[lifecycle][usecase] open->inspection_pending already applied request_id=%s", requestID)
		}
	}

	return interest, nil
}

func (u *RequestLifecycleUseCase) ScheduleInspection(ctx context.Context, requestID string, inspectionDate time.Time, notes string) (entities.RenovationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}
	if inspectionDate.IsZero() {
		return entities.RenovationRequest{}, ErrInvalidInspectionDate
	}

	r, err := u.GetRequestByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if !r.Status.CanTransitionTo(entities.StatusInspectionScheduled) {
		return entities.RenovationRequest{}, invalidTransition(r.Status, entities.StatusInspectionScheduled)
	}

	inspectionDate = inspectionDate.UTC()
	biddingStart := inspectionDate
	biddingEnd := inspectionDate.Add(entities.BiddingWindowDuration)

	updated, err := u.requestRepo.UpdateStatusIf(ctx, requestID, r.Status, entities.StatusInspectionScheduled, interfaces.RequestPatch{
		InspectionDate:   &inspectionDate,
		InspectionNotes:  &notes,
		BiddingStartDate: &biddingStart,
		BiddingEndDate:   &biddingEnd,
	})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if updated.ID == "" {
		return entities.RenovationRequest{}, ErrConflict
	}
	log.Printf("[lifecycle][usecase] inspection scheduled request_id=%s inspection_date=%s bidding_end=%s",
		requestID, inspectionDate.Format(time.RFC3339), biddingEnd.Format(time.RFC3339))

	u.notifyUser(ctx, updated.CustomerID, interfaces.TemplateInspectionScheduled, map[string]string{
		"request_id":      updated.ID,
		"inspection_date": inspectionDate.Format(time.RFC3339),
	})

	return updated, nil
}

// CancelInspection reverts a scheduled inspection: the request returns to
// inspection_pending, the inspection and bidding-window fields are removed
// and every registered interest is deleted.
func (u *RequestLifecycleUseCase) CancelInspection(ctx context.Context, requestID, actingCustomerID string) (entities.RenovationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	actingCustomerID = strings.TrimSpace(actingCustomerID)
	if requestID == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}
	if actingCustomerID == "" {
		return entities.RenovationRequest{}, ErrInvalidUserID
	}

	r, err := u.GetRequestByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if r.CustomerID != actingCustomerID {
		return entities.RenovationRequest{}, ErrUnauthorized
	}
	if r.Status != entities.StatusInspectionScheduled {
		return entities.RenovationRequest{}, invalidTransition(r.Status, entities.StatusInspectionPending)
	}

	// Collect interested contractors before the rows disappear so they can
	// still be told the visit is off.
	interests, err := u.interestRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}

	updated, err := u.requestRepo.UpdateStatusIf(ctx, requestID, entities.StatusInspectionScheduled, entities.StatusInspectionPending, interfaces.RequestPatch{
		ClearInspection: true,
	})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if updated.ID == "" {
		return entities.RenovationRequest{}, ErrConflict
	}

	if err := u.interestRepo.DeleteByRequestID(ctx, requestID); err != nil {
		// The transition committed; the orphan rows only affect re-invites.
		log.Printf("[lifecycle][usecase] failed deleting interests request_id=%s err=%v", requestID, err)
	}

	for _, interest := range interests {
		if !interest.WillParticipate {
			continue
		}
		u.notifyUser(ctx, interest.ContractorID, interfaces.TemplateInspectionCancelled, map[string]string{
			"request_id": requestID,
		})
	}

	return updated, nil
}

func (u *RequestLifecycleUseCase) OpenBidding(ctx context.Context, requestID string) (entities.RenovationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}

	r, err := u.GetRequestByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if !r.Status.CanTransitionTo(entities.StatusBiddingOpen) {
		return entities.RenovationRequest{}, invalidTransition(r.Status, entities.StatusBiddingOpen)
	}
	if r.BiddingStartDate == nil || u.clock().Before(*r.BiddingStartDate) {
		return entities.RenovationRequest{}, fmt.Errorf("%w: bidding start date not reached", ErrInvalidTransition)
	}

	updated, err := u.requestRepo.UpdateStatusIf(ctx, requestID, r.Status, entities.StatusBiddingOpen, interfaces.RequestPatch{})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if updated.ID == "" {
		return entities.RenovationRequest{}, ErrConflict
	}
	log.Printf("[lifecycle][usecase] bidding opened request_id=%s", requestID)
	return updated, nil
}

// CloseBidding forces the bidding_open -> bidding_closed transition once the
// bidding deadline has passed. Bids are left pending; only the selection
// commit mutates them.
func (u *RequestLifecycleUseCase) CloseBidding(ctx context.Context, requestID string) (entities.RenovationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}

	r, err := u.GetRequestByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if !r.Status.CanTransitionTo(entities.StatusBiddingClosed) {
		return entities.RenovationRequest{}, invalidTransition(r.Status, entities.StatusBiddingClosed)
	}
	if r.BiddingEndDate == nil || u.clock().Before(*r.BiddingEndDate) {
		return entities.RenovationRequest{}, fmt.Errorf("%w: bidding end date not reached", ErrInvalidTransition)
	}

	updated, err := u.requestRepo.UpdateStatusIf(ctx, requestID, entities.StatusBiddingOpen, entities.StatusBiddingClosed, interfaces.RequestPatch{})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if updated.ID == "" {
		return entities.RenovationRequest{}, ErrConflict
	}
	log.Printf("[lifecycle][usecase] bidding closed request_id=%s", requestID)

	u.notifyUser(ctx, updated.CustomerID, interfaces.TemplateBiddingClosed, map[string]string{
		"request_id": updated.ID,
	})

	return updated, nil
}

func (u *RequestLifecycleUseCase) CompleteRequest(ctx context.Context, requestID string) (entities.RenovationRequest, error) {
	return u.manualTransition(ctx, requestID, entities.StatusCompleted)
}

// WithdrawRequest closes a request administratively from any non-terminal
// state.
func (u *RequestLifecycleUseCase) WithdrawRequest(ctx context.Context, requestID string) (entities.RenovationRequest, error) {
	return u.manualTransition(ctx, requestID, entities.StatusClosed)
}

func (u *RequestLifecycleUseCase) manualTransition(ctx context.Context, requestID string, target entities.RequestStatus) (entities.RenovationRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.RenovationRequest{}, ErrInvalidRequestID
	}

	r, err := u.GetRequestByID(ctx, requestID)
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if !r.Status.CanTransitionTo(target) {
		return entities.RenovationRequest{}, invalidTransition(r.Status, target)
	}

	updated, err := u.requestRepo.UpdateStatusIf(ctx, requestID, r.Status, target, interfaces.RequestPatch{})
	if err != nil {
		return entities.RenovationRequest{}, err
	}
	if updated.ID == "" {
		return entities.RenovationRequest{}, ErrConflict
	}
	log.Printf("[lifecycle][usecase] request %s request_id=%s", target, requestID)
	return updated, nil
}

func (u *RequestLifecycleUseCase) requireRole(ctx context.Context, userID string, role entities.Role) error {
	user, err := u.directory.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == "" {
		return ErrUserNotFound
	}
	if user.Role != role {
		return ErrUnauthorized
	}
	return nil
}

// notifyUser dispatches a best-effort notification; failures are logged and
// never influence the outcome of the transition that triggered them.
func (u *RequestLifecycleUseCase) notifyUser(ctx context.Context, userID, template string, data map[string]string) {
	if u.notifier == nil {
		return
	}
	user, err := u.directory.GetUser(ctx, userID)
	if err != nil || user.Email == "" {
		log.Printf("[lifecycle][usecase] notification recipient lookup failed user_id=%s template=%s err=%v", userID, template, err)
		return
	}
	if err := u.notifier.Send(ctx, user.Email, template, data); err != nil {
		log.Printf("[lifecycle][usecase] notification dispatch failed user_id=%s template=%s err=%v", userID, template, err)
	}
}
