package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// lpMatrixHandler handles the master fund's LP call & payment matrix.
type lpMatrixHandler struct {
	lpService    portssvc.LPMatrixSvcFacade
	currencyCode string
}

func registerLPMatrixRoutes(rg *gin.RouterGroup, lpService portssvc.LPMatrixSvcFacade, currencyCode string) {
	h := &lpMatrixHandler{lpService: lpService, currencyCode: currencyCode}

	rg.GET("/lp-matrix", h.getMatrix)
	rg.POST("/lp-matrix/batch", h.batchSave)

	lpCalls := rg.Group("/lp-calls")
	{
		lpCalls.POST("", h.addLPCall)
		lpCalls.DELETE("/:lpCallID", h.deleteLPCall)
		lpCalls.PUT("/:lpCallID/payments/:investorID", h.setPaymentStatus)
	}
}

// getMatrix godoc
// @Summary Get the LP call & payment matrix
// @Description Required, paid and outstanding per call and per investor
// @Tags lp-matrix
// @Produce  json
// @Success 200 {object} dto.LPMatrixResponse
// @Security BearerAuth
// @Router /lp-matrix [get]
func (h *lpMatrixHandler) getMatrix(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	matrix, err := h.lpService.GetMatrix(c.Request.Context())
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("LP matrix degraded to empty", slog.String("error", err.Error()))
			res := dto.ToLPMatrixResponse(domain.LPMatrix{
				CommitmentBase:   decimal.Zero,
				TotalCallPct:     decimal.Zero,
				Calls:            []domain.LPCallReconciliation{},
				Investors:        []domain.InvestorTotals{},
				RequiredTotal:    decimal.Zero,
				PaidTotal:        decimal.Zero,
				OutstandingTotal: decimal.Zero,
			}, h.currencyCode)
			res.Warning = unavailableWarning
			c.JSON(http.StatusOK, res)
			return
		}
		respondError(c, logger, err, "load LP matrix")
		return
	}

	c.JSON(http.StatusOK, dto.ToLPMatrixResponse(*matrix, h.currencyCode))
}

// addLPCall godoc
// @Summary Add an LP call
// @Description Adds a pro-rata call on the master fund's investors
// @Tags lp-matrix
// @Accept  json
// @Produce  json
// @Param   call body dto.CreateLPCallRequest true "LP call"
// @Success 201 {object} dto.LPCallResponse
// @Failure 400 {object} map[string]string "Percentage out of range"
// @Security BearerAuth
// @Router /lp-calls [post]
func (h *lpMatrixHandler) addLPCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLPCallRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	call, err := h.lpService.AddLPCall(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "add LP call")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLPCallResponse(call))
}

// deleteLPCall godoc
// @Summary Delete an LP call
// @Description Deletes the call and all of its payment cells
// @Tags lp-matrix
// @Param   lpCallID path string true "LP call ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "LP call not found"
// @Security BearerAuth
// @Router /lp-calls/{lpCallID} [delete]
func (h *lpMatrixHandler) deleteLPCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lpCallID := c.Param("lpCallID")

	if err := h.lpService.DeleteLPCall(c.Request.Context(), lpCallID); err != nil {
		respondError(c, logger.With(slog.String("lp_call_id", lpCallID)), err, "delete LP call")
		return
	}

	c.Status(http.StatusNoContent)
}

// setPaymentStatus godoc
// @Summary Mark an investor's share of an LP call paid or unpaid
// @Tags lp-matrix
// @Accept  json
// @Produce  json
// @Param   lpCallID path string true "LP call ID"
// @Param   investorID path string true "Investor ID"
// @Param   status body dto.SetPaymentStatusRequest true "Payment status"
// @Success 200 {object} domain.PaymentChange
// @Failure 404 {object} map[string]string "LP call or investor not found"
// @Security BearerAuth
// @Router /lp-calls/{lpCallID}/payments/{investorID} [put]
func (h *lpMatrixHandler) setPaymentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	lpCallID := c.Param("lpCallID")
	investorID := c.Param("investorID")

	var req dto.SetPaymentStatusRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	change, err := h.lpService.SetPaymentStatus(c.Request.Context(), lpCallID, investorID, *req.IsPaid, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("lp_call_id", lpCallID), slog.String("investor_id", investorID)), err, "set payment status")
		return
	}

	c.JSON(http.StatusOK, change)
}

// batchSave godoc
// @Summary Save edited matrix cells
// @Description Writes all cells atomically. Answers 409 when any touched call changed since the client read it.
// @Tags lp-matrix
// @Accept  json
// @Produce  json
// @Param   batch body dto.BatchSaveRequest true "Edited cells"
// @Success 200 {object} domain.BatchSaveResult
// @Failure 400 {object} map[string]string "Malformed batch"
// @Failure 409 {object} map[string]string "Stale revision"
// @Security BearerAuth
// @Router /lp-matrix/batch [post]
func (h *lpMatrixHandler) batchSave(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchSaveRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Saving LP matrix batch", slog.Int("cells", len(req.Cells)))

	result, err := h.lpService.BatchSave(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "save LP matrix")
		return
	}

	c.JSON(http.StatusOK, result)
}
