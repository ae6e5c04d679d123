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

// capitalCallHandler handles HTTP requests for a fund's capital call ledger.
type capitalCallHandler struct {
	callService portssvc.CapitalCallSvcFacade
}

func registerCapitalCallRoutes(rg *gin.RouterGroup, callService portssvc.CapitalCallSvcFacade) {
	h := &capitalCallHandler{callService: callService}

	rg.GET("/funds/:fundID/capital-calls", h.listCalls)
	rg.POST("/funds/:fundID/capital-calls", h.recordCall)
	rg.GET("/funds/:fundID/capital-calls/future", h.listFutureCalls)
	rg.DELETE("/capital-calls/:callID", h.deleteCall)
}

// recordCall godoc
// @Summary Record a capital call
// @Description Appends a realized or forecast capital call to the fund's ledger
// @Tags capital-calls
// @Accept  json
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Param   call body dto.RecordCapitalCallRequest true "Capital call"
// @Success 201 {object} dto.CapitalCallResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 409 {object} map[string]string "Duplicate record key (call numbers may repeat)"
// @Security BearerAuth
// @Router /funds/{fundID}/capital-calls [post]
func (h *capitalCallHandler) recordCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	var req dto.RecordCapitalCallRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Recording capital call", slog.String("fund_id", fundID), slog.Int("call_number", req.CallNumber), slog.Bool("is_future", req.IsFuture))

	call, err := h.callService.RecordCall(c.Request.Context(), fundID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "record capital call")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCapitalCallResponse(call))
}

// listCalls godoc
// @Summary List a fund's capital calls
// @Description Realized and forecast calls ordered by call number, with the called and future totals
// @Tags capital-calls
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Success 200 {object} dto.ListCapitalCallsResponse
// @Security BearerAuth
// @Router /funds/{fundID}/capital-calls [get]
func (h *capitalCallHandler) listCalls(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	calls, err := h.callService.ListCalls(c.Request.Context(), fundID)
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("Listing capital calls degraded to empty", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ListCapitalCallsResponse{
				Calls:        []dto.CapitalCallResponse{},
				TotalCalled:  decimal.Zero,
				FutureCalled: decimal.Zero,
				Warning:      unavailableWarning,
			})
			return
		}
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "list capital calls")
		return
	}

	c.JSON(http.StatusOK, dto.ListCapitalCallsResponse{
		Calls:        dto.ToListCapitalCallResponse(calls),
		TotalCalled:  accounting.TotalCalled(calls),
		FutureCalled: accounting.FutureCalled(calls),
	})
}

// listFutureCalls godoc
// @Summary List a fund's forecast capital calls
// @Tags capital-calls
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Success 200 {object} dto.ListCapitalCallsResponse
// @Security BearerAuth
// @Router /funds/{fundID}/capital-calls/future [get]
func (h *capitalCallHandler) listFutureCalls(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	calls, err := h.callService.ListFutureCalls(c.Request.Context(), fundID)
	if err != nil {
		if isUnavailable(err) {
			c.JSON(http.StatusOK, dto.ListCapitalCallsResponse{
				Calls:        []dto.CapitalCallResponse{},
				TotalCalled:  decimal.Zero,
				FutureCalled: decimal.Zero,
				Warning:      unavailableWarning,
			})
			return
		}
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "list future capital calls")
		return
	}

	c.JSON(http.StatusOK, dto.ListCapitalCallsResponse{
		Calls:        dto.ToListCapitalCallResponse(calls),
		TotalCalled:  decimal.Zero,
		FutureCalled: accounting.FutureCalled(calls),
	})
}

// deleteCall godoc
// @Summary Delete a capital call
// @Tags capital-calls
// @Param   callID path string true "Capital call ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Capital call not found"
// @Security BearerAuth
// @Router /capital-calls/{callID} [delete]
func (h *capitalCallHandler) deleteCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	callID := c.Param("callID")

	if err := h.callService.DeleteCall(c.Request.Context(), callID); err != nil {
		respondError(c, logger.With(slog.String("call_id", callID)), err, "delete capital call")
		return
	}

	c.Status(http.StatusNoContent)
}
