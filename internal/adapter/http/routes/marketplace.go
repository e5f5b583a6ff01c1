package routes

import (
	"renovahub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests    = "/requests"
	PathContractors = "/contractors"
	PathMaintenance = "/maintenance"
)

func addMarketplaceRoutes(rg *gin.RouterGroup, requestHandler *handlers.RenovationRequestHandler, bidHandler *handlers.BidHandler, maintenanceHandler *handlers.MaintenanceHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", requestHandler.ListRequests)
		requests.GET("/:request_id", requestHandler.GetRequest)

		// Inspection phase.
		requests.POST("/:request_id/interest", requestHandler.RegisterInterest)
		requests.POST("/:request_id/inspection", requestHandler.ScheduleInspection)
		requests.POST("/:request_id/inspection/cancel", requestHandler.CancelInspection)

		// Bidding window.
		requests.POST("/:request_id/bidding/open", requestHandler.OpenBidding)
		requests.POST("/:request_id/bidding/close", requestHandler.CloseBidding)
		requests.POST("/:request_id/bids", bidHandler.SubmitBid)
		requests.GET("/:request_id/bids", bidHandler.ListBidsForRequest)

		// Resolution.
		requests.POST("/:request_id/selection", requestHandler.SelectContractor)
		requests.POST("/:request_id/complete", requestHandler.CompleteRequest)
		requests.POST("/:request_id/withdraw", requestHandler.WithdrawRequest)
	}

	contractors := rg.Group(PathContractors)
	{
		contractors.GET("/:contractor_id/bids", bidHandler.ListContractorBids)
	}

	maintenance := rg.Group(PathMaintenance)
	{
		maintenance.POST("/bidding-sweep", maintenanceHandler.SweepExpiredBidding)
	}
}
