package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"renovahub/internal/adapter/http/handlers/mocks"
	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRenovationRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().CreateRequest(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateRequestInput{})).DoAndReturn(
			func(_ context.Context, input usecase.CreateRequestInput) (entities.RenovationRequest, error) {
				if input.CustomerID != "cust-1" || input.Category != entities.CategoryKitchen {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.RenovationRequest{ID: "req-1", CustomerID: "cust-1", Status: entities.StatusOpen}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		body := `{"customer_id":"cust-1","category":"kitchen","budget_range":"25k_50k","timeline":"flexible","postal_code":"94110","description":"Full kitchen remodel"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["id"] != "req-1" || res["status"] != "open" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("invalid category maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(entities.RenovationRequest{}, usecase.ErrInvalidCategory)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		body := `{"customer_id":"cust-1","category":"spaceship","budget_range":"25k_50k","timeline":"flexible","description":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRenovationRequestHandler_GetRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().GetRequestByID(gomock.Any(), "missing").Return(entities.RenovationRequest{}, usecase.ErrRequestNotFound)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().GetRequestByID(gomock.Any(), "req-1").Return(entities.RenovationRequest{ID: "req-1", Status: entities.StatusBiddingOpen}, nil)

		r := gin.New()
		r.GET("/v1/requests/:request_id", h.GetRequest)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRenovationRequestHandler_ListRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing filter", func(t *testing.T) {
		h := NewRenovationRequestHandler(nil, nil)

		r := gin.New()
		r.GET("/v1/requests", h.ListRequests)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().ListCustomerRequests(gomock.Any(), "cust-1").Return([]entities.RenovationRequest{{ID: "req-1"}}, nil)

		r := gin.New()
		r.GET("/v1/requests", h.ListRequests)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests?customer_id=cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 request, got %d", len(res))
		}
	})

	t.Run("by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().ListRequestsByStatus(gomock.Any(), entities.StatusBiddingOpen).Return(nil, nil)

		r := gin.New()
		r.GET("/v1/requests", h.ListRequests)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests?status=bidding_open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRenovationRequestHandler_ScheduleInspection(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		h := NewRenovationRequestHandler(nil, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/inspection", h.ScheduleInspection)

		body := `{"inspection_date":"not-a-date"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/inspection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("schedule success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		lifecycle.EXPECT().ScheduleInspection(gomock.Any(), "req-1", want, "gate code 1234").
			Return(entities.RenovationRequest{ID: "req-1", Status: entities.StatusInspectionScheduled}, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/inspection", h.ScheduleInspection)

		body := `{"inspection_date":"2025-06-15","notes":"gate code 1234"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/inspection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().ScheduleInspection(gomock.Any(), "req-1", gomock.Any(), gomock.Any()).
			Return(entities.RenovationRequest{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.POST("/v1/requests/:request_id/inspection", h.ScheduleInspection)

		body := `{"inspection_date":"2025-06-15"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/inspection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestRenovationRequestHandler_RegisterInterest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing will_participate", func(t *testing.T) {
		h := NewRenovationRequestHandler(nil, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/interest", h.RegisterInterest)

		body := `{"contractor_id":"con-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/interest", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("register success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().RegisterInterest(gomock.Any(), "req-1", "con-1", true).
			Return(entities.InspectionInterest{RequestID: "req-1", ContractorID: "con-1", WillParticipate: true}, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/interest", h.RegisterInterest)

		body := `{"contractor_id":"con-1","will_participate":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/interest", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestRenovationRequestHandler_SelectContractor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("select success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		selection := mocks.NewMockISelectionUseCase(ctrl)
		h := NewRenovationRequestHandler(nil, selection)

		selection.EXPECT().SelectContractor(gomock.Any(), "req-1", "cust-1", "con-1").
			Return(entities.RenovationRequest{ID: "req-1", Status: entities.StatusContractorSelected, SelectedContractorID: "con-1"}, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/selection", h.SelectContractor)

		body := `{"customer_id":"cust-1","contractor_id":"con-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/selection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["selected_contractor_id"] != "con-1" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("wrong state maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		selection := mocks.NewMockISelectionUseCase(ctrl)
		h := NewRenovationRequestHandler(nil, selection)

		selection.EXPECT().SelectContractor(gomock.Any(), "req-1", "cust-1", "con-1").
			Return(entities.RenovationRequest{}, usecase.ErrInvalidState)

		r := gin.New()
		r.POST("/v1/requests/:request_id/selection", h.SelectContractor)

		body := `{"customer_id":"cust-1","contractor_id":"con-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/selection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not the owner maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		selection := mocks.NewMockISelectionUseCase(ctrl)
		h := NewRenovationRequestHandler(nil, selection)

		selection.EXPECT().SelectContractor(gomock.Any(), "req-1", "intruder", "con-1").
			Return(entities.RenovationRequest{}, usecase.ErrUnauthorized)

		r := gin.New()
		r.POST("/v1/requests/:request_id/selection", h.SelectContractor)

		body := `{"customer_id":"intruder","contractor_id":"con-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/selection", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestRenovationRequestHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("close bidding conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().CloseBidding(gomock.Any(), "req-1").Return(entities.RenovationRequest{}, usecase.ErrConflict)

		r := gin.New()
		r.POST("/v1/requests/:request_id/bidding/close", h.CloseBidding)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/bidding/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("withdraw success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().WithdrawRequest(gomock.Any(), "req-1").Return(entities.RenovationRequest{ID: "req-1", Status: entities.StatusClosed}, nil)

		r := gin.New()
		r.POST("/v1/requests/:request_id/withdraw", h.WithdrawRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/withdraw", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIRequestLifecycleUseCase(ctrl)
		h := NewRenovationRequestHandler(lifecycle, nil)

		lifecycle.EXPECT().OpenBidding(gomock.Any(), "req-1").Return(entities.RenovationRequest{}, errors.New("dynamo down"))

		r := gin.New()
		r.POST("/v1/requests/:request_id/bidding/open", h.OpenBidding)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests/req-1/bidding/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
