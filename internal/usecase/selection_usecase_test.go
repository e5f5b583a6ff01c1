package usecase

import (
	"context"
	"errors"
	"testing"

	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase/interfaces"
	mock_interfaces "renovahub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSelectionUseCase_SelectContractor(t *testing.T) {
	closed := entities.RenovationRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.StatusBiddingClosed}

	t.Run("only the owner selects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSelectionUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(closed, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "someone-else", "con-1")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("selection requires bidding_closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSelectionUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{
			ID: "req-1", CustomerID: "cust-1", Status: entities.StatusBiddingOpen,
		}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "cust-1", "con-1")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("second selection on the same request", func(t *testing.T) {
		// After the first selection committed the request is
		// contractor_selected, so the state check rejects the retry.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		uc := NewSelectionUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{
			ID: "req-1", CustomerID: "cust-1", Status: entities.StatusContractorSelected, SelectedContractorID: "con-1",
		}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "cust-1", "con-2")
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("no pending bid from the chosen contractor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		bidRepo := mock_interfaces.NewMockIBidRepository(ctrl)
		uc := NewSelectionUseCase(repo, bidRepo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(closed, nil)
		bidRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Bid{
			{ID: "bid-2", RequestID: "req-1", ContractorID: "con-2", Status: entities.BidStatusPending},
		}, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "cust-1", "con-1")
		if !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})

	t.Run("commit lost the transaction race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		bidRepo := mock_interfaces.NewMockIBidRepository(ctrl)
		selectionRepo := mock_interfaces.NewMockISelectionRepository(ctrl)
		uc := NewSelectionUseCase(repo, bidRepo, selectionRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(closed, nil)
		bidRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Bid{
			{ID: "bid-1", RequestID: "req-1", ContractorID: "con-1", Status: entities.BidStatusPending},
		}, nil)
		selectionRepo.EXPECT().CommitSelection(gomock.Any(), "req-1", "con-1", "bid-1", gomock.Nil()).Return(false, nil)

		_, err := uc.SelectContractor(context.Background(), "req-1", "cust-1", "con-1")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("selection accepts the winner and rejects the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		bidRepo := mock_interfaces.NewMockIBidRepository(ctrl)
		selectionRepo := mock_interfaces.NewMockISelectionRepository(ctrl)
		directory := mock_interfaces.NewMockIIdentityDirectory(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewSelectionUseCase(repo, bidRepo, selectionRepo, directory, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(closed, nil)
		bidRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Bid{
			{ID: "bid-1", RequestID: "req-1", ContractorID: "con-1", Status: entities.BidStatusPending},
			{ID: "bid-2", RequestID: "req-1", ContractorID: "con-2", Status: entities.BidStatusPending},
			{ID: "bid-3", RequestID: "req-1", ContractorID: "con-3", Status: entities.BidStatusRejected},
		}, nil)
		selectionRepo.EXPECT().CommitSelection(gomock.Any(), "req-1", "con-1", "bid-1", []string{"con-2"}).Return(true, nil)

		directory.EXPECT().GetUser(gomock.Any(), "con-1").Return(entities.User{ID: "con-1", Email: "con-1@example.com"}, nil)
		notifier.EXPECT().Send(gomock.Any(), "con-1@example.com", interfaces.TemplateBidAccepted, gomock.Any()).Return(nil)
		directory.EXPECT().GetUser(gomock.Any(), "con-2").Return(entities.User{ID: "con-2", Email: "con-2@example.com"}, nil)
		notifier.EXPECT().Send(gomock.Any(), "con-2@example.com", interfaces.TemplateBidRejected, gomock.Any()).Return(nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{
			ID: "req-1", CustomerID: "cust-1", Status: entities.StatusContractorSelected, SelectedContractorID: "con-1",
		}, nil)

		res, err := uc.SelectContractor(context.Background(), "req-1", "cust-1", "con-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusContractorSelected || res.SelectedContractorID != "con-1" {
			t.Fatalf("unexpected request: %+v", res)
		}
	})

	t.Run("notification failure never fails the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRenovationRequestRepository(ctrl)
		bidRepo := mock_interfaces.NewMockIBidRepository(ctrl)
		selectionRepo := mock_interfaces.NewMockISelectionRepository(ctrl)
		directory := mock_interfaces.NewMockIIdentityDirectory(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewSelectionUseCase(repo, bidRepo, selectionRepo, directory, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(closed, nil)
		bidRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Bid{
			{ID: "bid-1", RequestID: "req-1", ContractorID: "con-1", Status: entities.BidStatusPending},
		}, nil)
		selectionRepo.EXPECT().CommitSelection(gomock.Any(), "req-1", "con-1", "bid-1", gomock.Nil()).Return(true, nil)
		directory.EXPECT().GetUser(gomock.Any(), "con-1").Return(entities.User{ID: "con-1", Email: "con-1@example.com"}, nil)
		notifier.EXPECT().Send(gomock.Any(), "con-1@example.com", interfaces.TemplateBidAccepted, gomock.Any()).Return(errors.New("ses down"))
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{
			ID: "req-1", Status: entities.StatusContractorSelected,
		}, nil)

		if _, err := uc.SelectContractor(context.Background(), "req-1", "cust-1", "con-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
