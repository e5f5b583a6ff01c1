package handlers

import (
	"errors"
	"net/http"

	request "renovahub/internal/adapter/http/dto/request"
	response "renovahub/internal/adapter/http/dto/response"
	"renovahub/internal/usecase"
	"renovahub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

type BidHandler struct {
	bids usecase.IBidUseCase
}

func NewBidHandler(bids usecase.IBidUseCase) *BidHandler {
	return &BidHandler{bids: bids}
}

func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	startDate, err := payload.ResolveStartDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_START_DATE", "Invalid proposed start date", http.StatusBadRequest).ToHTTPError())
		return
	}

	bid, err := h.bids.SubmitBid(c.Request.Context(), usecase.SubmitBidInput{
		RequestID:       c.Param("request_id"),
		ContractorID:    payload.ContractorID,
		Amount:          payload.Amount,
		TimelineWeeks:   payload.TimelineWeeks,
		StartDate:       startDate,
		Notes:           payload.Notes,
		EstimateFileKey: payload.EstimateFileKey,
	})
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// ListBidsForRequest returns all bids on a request. Only the request owner
// or an admin may see them, so the caller identifies itself via the
// acting_user_id query parameter.
func (h *BidHandler) ListBidsForRequest(c *gin.Context) {
	bids, err := h.bids.ListBidsForRequest(c.Request.Context(), c.Param("request_id"), c.Query("acting_user_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBids(bids))
}

func (h *BidHandler) ListContractorBids(c *gin.Context) {
	bids, err := h.bids.ListContractorBids(c.Request.Context(), c.Param("contractor_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBids(bids))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidBidAmount), errors.Is(err, usecase.ErrInvalidBidTimeline):
		return pkg.NewDomainErrorSimple("INVALID_BID", "Invalid bid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Renovation request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "User is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBiddingNotOpen):
		return pkg.NewDomainErrorSimple("BIDDING_NOT_OPEN", "Request is not accepting bids", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidAlreadyExists):
		return pkg.NewDomainErrorSimple("BID_ALREADY_EXISTS", "Contractor already submitted a bid on this request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
