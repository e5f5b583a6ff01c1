package handlers

import (
	"context"
	"errors"
	"net/http"

	request "renovahub/internal/adapter/http/dto/request"
	response "renovahub/internal/adapter/http/dto/response"
	"renovahub/internal/domain/entities"
	"renovahub/internal/usecase"
	"renovahub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid renovation request payload", http.StatusBadRequest)
)

// RenovationRequestHandler handles HTTP requests for the renovation request
// lifecycle: intake, inspection scheduling, bidding window control and the
// customer's contractor selection.

type RenovationRequestHandler struct {
	lifecycle usecase.IRequestLifecycleUseCase
	selection usecase.ISelectionUseCase
}

func NewRenovationRequestHandler(lifecycle usecase.IRequestLifecycleUseCase, selection usecase.ISelectionUseCase) *RenovationRequestHandler {
	return &RenovationRequestHandler{lifecycle: lifecycle, selection: selection}
}

func (h *RenovationRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateRenovationRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.lifecycle.CreateRequest(c.Request.Context(), usecase.CreateRequestInput{
		CustomerID:  payload.CustomerID,
		Category:    entities.RequestCategory(payload.Category),
		BudgetRange: entities.BudgetRange(payload.BudgetRange),
		Timeline:    entities.TimelinePreference(payload.Timeline),
		PostalCode:  payload.PostalCode,
		Address:     payload.Address,
		Description: payload.Description,
		PhotoKeys:   payload.PhotoKeys,
	})
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRenovationRequest(created))
}

func (h *RenovationRequestHandler) GetRequest(c *gin.Context) {
	r, err := h.lifecycle.GetRequestByID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRenovationRequest(r))
}

// ListRequests filters by customer_id or status; exactly one is required.
func (h *RenovationRequestHandler) ListRequests(c *gin.Context) {
	customerID := c.Query("customer_id")
	status := c.Query("status")

	var (
		requests []entities.RenovationRequest
		err      error
	)
	switch {
	case customerID != "":
		requests, err = h.lifecycle.ListCustomerRequests(c.Request.Context(), customerID)
	case status != "":
		requests, err = h.lifecycle.ListRequestsByStatus(c.Request.Context(), entities.RequestStatus(status))
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_FILTER", "customer_id or status query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRenovationRequests(requests))
}

func (h *RenovationRequestHandler) RegisterInterest(c *gin.Context) {
	var payload request.InspectionInterestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	interest, err := h.lifecycle.RegisterInterest(c.Request.Context(), c.Param("request_id"), payload.ContractorID, *payload.WillParticipate)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionInterest(interest))
}

func (h *RenovationRequestHandler) ScheduleInspection(c *gin.Context) {
	var payload request.ScheduleInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	inspectionDate, err := payload.ResolveInspectionDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_INSPECTION_DATE", "Invalid inspection date", http.StatusBadRequest).ToHTTPError())
		return
	}

	r, err := h.lifecycle.ScheduleInspection(c.Request.Context(), c.Param("request_id"), inspectionDate, payload.Notes)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRenovationRequest(r))
}

func (h *RenovationRequestHandler) CancelInspection(c *gin.Context) {
	var payload request.CancelInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.lifecycle.CancelInspection(c.Request.Context(), c.Param("request_id"), payload.CustomerID)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRenovationRequest(r))
}

func (h *RenovationRequestHandler) OpenBidding(c *gin.Context) {
	h.forceTransition(c, h.lifecycle.OpenBidding)
}

func (h *RenovationRequestHandler) CloseBidding(c *gin.Context) {
	h.forceTransition(c, h.lifecycle.CloseBidding)
}

func (h *RenovationRequestHandler) CompleteRequest(c *gin.Context) {
	h.forceTransition(c, h.lifecycle.CompleteRequest)
}

func (h *RenovationRequestHandler) WithdrawRequest(c *gin.Context) {
	h.forceTransition(c, h.lifecycle.WithdrawRequest)
}

func (h *RenovationRequestHandler) SelectContractor(c *gin.Context) {
	var payload request.SelectContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	r, err := h.selection.SelectContractor(c.Request.Context(), c.Param("request_id"), payload.CustomerID, payload.ContractorID)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRenovationRequest(r))
}

func (h *RenovationRequestHandler) forceTransition(
	c *gin.Context,
	transition func(ctx context.Context, requestID string) (entities.RenovationRequest, error),
) {
	r, err := transition(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRenovationRequest(r))
}

func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidBudgetRange),
		errors.Is(err, usecase.ErrInvalidTimeline), errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidInspectionDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Renovation request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "No pending bid from this contractor on the request", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "User is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Request is not in a state that allows this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Request was modified concurrently, re-read and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
