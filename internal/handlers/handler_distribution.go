package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/SscSPs/fund_ledger_app/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type distributionHandler struct {
	distributionService portssvc.DistributionSvcFacade
}

func registerDistributionRoutes(rg *gin.RouterGroup, distributionService portssvc.DistributionSvcFacade) {
	h := &distributionHandler{distributionService: distributionService}

	rg.GET("/funds/:fundID/distributions", h.listDistributions)
	rg.POST("/funds/:fundID/distributions", h.recordDistribution)
	rg.DELETE("/distributions/:distributionID", h.deleteDistribution)
}

// recordDistribution godoc
// @Summary Record a distribution
// @Tags distributions
// @Accept  json
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Param   distribution body dto.RecordDistributionRequest true "Distribution"
// @Success 201 {object} dto.DistributionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Fund not found"
// @Security BearerAuth
// @Router /funds/{fundID}/distributions [post]
func (h *distributionHandler) recordDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	var req dto.RecordDistributionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	dist, err := h.distributionService.RecordDistribution(c.Request.Context(), fundID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "record distribution")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDistributionResponse(dist))
}

// listDistributions godoc
// @Summary List a fund's distributions
// @Tags distributions
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Success 200 {object} dto.ListDistributionsResponse
// @Security BearerAuth
// @Router /funds/{fundID}/distributions [get]
func (h *distributionHandler) listDistributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	dists, err := h.distributionService.ListDistributions(c.Request.Context(), fundID)
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("Listing distributions degraded to empty", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ListDistributionsResponse{
				Distributions:    []dto.DistributionResponse{},
				TotalDistributed: decimal.Zero,
				Warning:          unavailableWarning,
			})
			return
		}
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "list distributions")
		return
	}

	c.JSON(http.StatusOK, dto.ListDistributionsResponse{
		Distributions:    dto.ToListDistributionResponse(dists),
		TotalDistributed: accounting.TotalDistributed(dists),
	})
}

// deleteDistribution godoc
// @Summary Delete a distribution
// @Tags distributions
// @Param   distributionID path string true "Distribution ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Distribution not found"
// @Security BearerAuth
// @Router /distributions/{distributionID} [delete]
func (h *distributionHandler) deleteDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.distributionService.DeleteDistribution(c.Request.Context(), c.Param("distributionID")); err != nil {
		respondError(c, logger, err, "delete distribution")
		return
	}

	c.Status(http.StatusNoContent)
}
