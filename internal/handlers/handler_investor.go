package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investorHandler handles HTTP requests for limited partners.
type investorHandler struct {
	investorService portssvc.InvestorSvcFacade
}

func registerInvestorRoutes(rg *gin.RouterGroup, investorService portssvc.InvestorSvcFacade) {
	h := &investorHandler{investorService: investorService}

	investors := rg.Group("/investors")
	{
		investors.POST("", h.createInvestor)
		investors.GET("", h.listInvestors)
		investors.GET("/:investorID", h.getInvestor)
		investors.PUT("/:investorID", h.updateInvestor)
		investors.DELETE("/:investorID", h.deleteInvestor)
	}
}

// createInvestor godoc
// @Summary Add a limited partner
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   investor body dto.CreateInvestorRequest true "Investor details"
// @Success 201 {object} dto.InvestorResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Security BearerAuth
// @Router /investors [post]
func (h *investorHandler) createInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvestorRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	investor, err := h.investorService.CreateInvestor(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "create investor")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestorResponse(investor))
}

// listInvestors godoc
// @Summary List limited partners
// @Tags investors
// @Produce  json
// @Success 200 {object} dto.ListInvestorsResponse
// @Security BearerAuth
// @Router /investors [get]
func (h *investorHandler) listInvestors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investors, err := h.investorService.ListInvestors(c.Request.Context())
	if err != nil {
		if isUnavailable(err) {
			logger.Warn("Listing investors degraded to empty", slog.String("error", err.Error()))
			c.JSON(http.StatusOK, dto.ListInvestorsResponse{Investors: []dto.InvestorResponse{}, Warning: unavailableWarning})
			return
		}
		respondError(c, logger, err, "list investors")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvestorsResponse{Investors: dto.ToListInvestorResponse(investors)})
}

// getInvestor godoc
// @Summary Get a limited partner
// @Tags investors
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Success 200 {object} dto.InvestorResponse
// @Failure 404 {object} map[string]string "Investor not found"
// @Security BearerAuth
// @Router /investors/{investorID} [get]
func (h *investorHandler) getInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	investor, err := h.investorService.GetInvestorByID(c.Request.Context(), c.Param("investorID"))
	if err != nil {
		respondError(c, logger, err, "retrieve investor")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestorResponse(investor))
}

// updateInvestor godoc
// @Summary Update a limited partner
// @Tags investors
// @Accept  json
// @Produce  json
// @Param   investorID path string true "Investor ID"
// @Param   investor body dto.UpdateInvestorRequest true "Fields to update"
// @Success 200 {object} dto.InvestorResponse
// @Failure 404 {object} map[string]string "Investor not found"
// @Security BearerAuth
// @Router /investors/{investorID} [put]
func (h *investorHandler) updateInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateInvestorRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	investor, err := h.investorService.UpdateInvestor(c.Request.Context(), c.Param("investorID"), req, userID)
	if err != nil {
		respondError(c, logger, err, "update investor")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvestorResponse(investor))
}

// deleteInvestor godoc
// @Summary Delete a limited partner
// @Description Deletes the investor and its payment cells
// @Tags investors
// @Param   investorID path string true "Investor ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Investor not found"
// @Security BearerAuth
// @Router /investors/{investorID} [delete]
func (h *investorHandler) deleteInvestor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.investorService.DeleteInvestor(c.Request.Context(), c.Param("investorID")); err != nil {
		respondError(c, logger, err, "delete investor")
		return
	}

	c.Status(http.StatusNoContent)
}
