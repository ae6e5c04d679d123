package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundHandler handles HTTP requests for the commitment registry.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fs portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fs}
}

// registerFundRoutes registers routes related to funds.
func registerFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	funds := rg.Group("/funds")
	{
		funds.POST("", h.createFund)
		funds.GET("", h.listFunds)
		funds.GET("/:fundID", h.getFund)
		funds.PUT("/:fundID", h.updateFund)
		funds.DELETE("/:fundID", h.deleteFund)
		funds.GET("/:fundID/summary", h.getFundSummary)
	}
}

// createFund godoc
// @Summary Register a fund commitment
// @Description Adds an underlying fund to the registry
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   fund body dto.CreateFundRequest true "Fund details"
// @Success 201 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /funds [post]
func (h *fundHandler) createFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create fund", slog.String("fund_name", req.Name), slog.String("currency_code", req.CurrencyCode))

	fund, err := h.fundService.CreateFund(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "create fund")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFundResponse(fund))
}

// listFunds godoc
// @Summary List funds
// @Description Lists every fund in the registry ordered by name
// @Tags funds
// @Produce  json
// @Success 200 {object} dto.ListFundsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /funds [get]
func (h *fundHandler) listFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	funds, err := h.fundService.ListFunds(c.Request.Context())
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("Listing funds degraded to empty", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ListFundsResponse{Funds: []dto.FundResponse{}, Warning: unavailableWarning})
			return
		}
		respondError(c, logger, err, "list funds")
		return
	}

	c.JSON(http.StatusOK, dto.ListFundsResponse{Funds: dto.ToListFundResponse(funds)})
}

// getFund godoc
// @Summary Get a fund by ID
// @Tags funds
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Success 200 {object} dto.FundResponse
// @Failure 404 {object} map[string]string "Fund not found"
// @Security BearerAuth
// @Router /funds/{fundID} [get]
func (h *fundHandler) getFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	fund, err := h.fundService.GetFundByID(c.Request.Context(), fundID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "retrieve fund")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// updateFund godoc
// @Summary Update a fund
// @Description Updates only the provided fields of a fund
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Param   fund body dto.UpdateFundRequest true "Fields to update"
// @Success 200 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Fund not found"
// @Security BearerAuth
// @Router /funds/{fundID} [put]
func (h *fundHandler) updateFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	var req dto.UpdateFundRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	fund, err := h.fundService.UpdateFund(c.Request.Context(), fundID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "update fund")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// deleteFund godoc
// @Summary Delete a fund
// @Description Deletes the fund with its capital calls, distributions and quarterly reports
// @Tags funds
// @Param   fundID path string true "Fund ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Fund not found"
// @Security BearerAuth
// @Router /funds/{fundID} [delete]
func (h *fundHandler) deleteFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	if err := h.fundService.DeleteFund(c.Request.Context(), fundID); err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "delete fund")
		return
	}

	c.Status(http.StatusNoContent)
}

// getFundSummary godoc
// @Summary Get a fund rollup
// @Description Called, future, uncalled, called percentage, distributed and the latest report, recomputed from the ledgers
// @Tags funds
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Success 200 {object} dto.FundSummaryResponse
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /funds/{fundID}/summary [get]
func (h *fundHandler) getFundSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	summary, err := h.fundService.GetFundSummary(c.Request.Context(), fundID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "compute fund summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundSummaryResponse(summary))
}
