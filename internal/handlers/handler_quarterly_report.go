package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type quarterlyReportHandler struct {
	reportService portssvc.QuarterlyReportSvcFacade
}

func registerQuarterlyReportRoutes(rg *gin.RouterGroup, reportService portssvc.QuarterlyReportSvcFacade) {
	h := &quarterlyReportHandler{reportService: reportService}

	rg.GET("/funds/:fundID/reports", h.listReports)
	rg.PUT("/funds/:fundID/reports", h.upsertReport)
	rg.DELETE("/reports/:reportID", h.deleteReport)
}

// upsertReport godoc
// @Summary Write a quarterly report
// @Description Creates the performance snapshot for (year, quarter) or replaces the existing one
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Param   report body dto.UpsertQuarterlyReportRequest true "Quarterly report"
// @Success 200 {object} dto.QuarterlyReportResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Fund not found"
// @Security BearerAuth
// @Router /funds/{fundID}/reports [put]
func (h *quarterlyReportHandler) upsertReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	var req dto.UpsertQuarterlyReportRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, err := h.reportService.UpsertReport(c.Request.Context(), fundID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "save quarterly report")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuarterlyReportResponse(report))
}

// listReports godoc
// @Summary List a fund's quarterly reports
// @Tags reports
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Success 200 {object} dto.ListQuarterlyReportsResponse
// @Security BearerAuth
// @Router /funds/{fundID}/reports [get]
func (h *quarterlyReportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	reports, err := h.reportService.ListReports(c.Request.Context(), fundID)
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("Listing reports degraded to empty", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ListQuarterlyReportsResponse{Reports: []dto.QuarterlyReportResponse{}, Warning: unavailableWarning})
			return
		}
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "list quarterly reports")
		return
	}

	c.JSON(http.StatusOK, dto.ListQuarterlyReportsResponse{Reports: dto.ToListQuarterlyReportResponse(reports)})
}

// deleteReport godoc
// @Summary Delete a quarterly report
// @Tags reports
// @Param   reportID path string true "Report ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Report not found"
// @Security BearerAuth
// @Router /reports/{reportID} [delete]
func (h *quarterlyReportHandler) deleteReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.reportService.DeleteReport(c.Request.Context(), c.Param("reportID")); err != nil {
		respondError(c, logger, err, "delete quarterly report")
		return
	}

	c.Status(http.StatusNoContent)
}
