package handlers

import (
	"net/http"
	"time"

	"renovahub/internal/usecase"
	"renovahub/pkg"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler exposes operational endpoints. The bidding sweep is the
// same routine the sweeper binary runs on a ticker; the endpoint exists so
// operators can trigger it out of band.
type MaintenanceHandler struct {
	sweep usecase.ISweepUseCase
}

func NewMaintenanceHandler(sweep usecase.ISweepUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{sweep: sweep}
}

func (h *MaintenanceHandler) SweepExpiredBidding(c *gin.Context) {
	summary, err := h.sweep.SweepExpiredBidding(c.Request.Context(), time.Now().UTC())
	if err != nil {
		appErr := pkg.NewDomainError("SWEEP_FAILED", "Bidding sweep failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}
