package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type overviewHandler struct {
	overviewService portssvc.OverviewSvcFacade
}

func registerOverviewRoutes(rg *gin.RouterGroup, overviewService portssvc.OverviewSvcFacade) {
	h := &overviewHandler{overviewService: overviewService}
	rg.GET("/overview", h.getOverview)
}

// getOverview godoc
// @Summary Portfolio overview
// @Description Fund counts by status, per-currency totals and upcoming forecast calls
// @Tags overview
// @Produce  json
// @Success 200 {object} dto.OverviewResponse
// @Security BearerAuth
// @Router /overview [get]
func (h *overviewHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	overview, err := h.overviewService.GetOverview(c.Request.Context())
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("Overview degraded to empty", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.OverviewResponse{
				FundsByStatus: map[domain.FundStatus]int{},
				Totals:        []dto.CurrencyTotalsResponse{},
				UpcomingCalls: []dto.UpcomingCallResponse{},
				Warning:       unavailableWarning,
			})
			return
		}
		respondError(c, logger, err, "build overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}
