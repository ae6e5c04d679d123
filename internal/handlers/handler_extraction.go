package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxDocumentBytes caps uploaded notices and reports.
const maxDocumentBytes = 20 << 20

type extractionHandler struct {
	extractionService portssvc.ExtractionSvcFacade
}

func registerExtractionRoutes(rg *gin.RouterGroup, extractionService portssvc.ExtractionSvcFacade) {
	h := &extractionHandler{extractionService: extractionService}

	extract := rg.Group("/funds/:fundID/extract")
	{
		extract.POST("/capital-call", h.extractCapitalCall)
		extract.POST("/quarterly-report", h.extractQuarterlyReport)
	}
}

// readDocument loads the multipart "file" field and the commit flag.
func readDocument(c *gin.Context, logger *slog.Logger) (domain.Document, bool, bool) {
	commit := false
	if raw := c.Query("commit"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid commit flag: " + raw})
			return domain.Document{}, false, false
		}
		commit = v
	}

	fh, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing document upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A document must be uploaded in the 'file' field"})
		return domain.Document{}, false, false
	}
	if fh.Size > maxDocumentBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("Document exceeds %d bytes", maxDocumentBytes)})
		return domain.Document{}, false, false
	}

	f, err := fh.Open()
	if err != nil {
		logger.Error("Failed to open uploaded document", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded document"})
		return domain.Document{}, false, false
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxDocumentBytes))
	if err != nil {
		logger.Error("Failed to read uploaded document", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded document"})
		return domain.Document{}, false, false
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(content)
	}

	return domain.Document{Filename: fh.Filename, MIMEType: mimeType, Content: content}, commit, true
}

// extractCapitalCall godoc
// @Summary Extract a capital call from a notice
// @Description Reads a capital call notice and returns a normalized draft. With commit=true the draft is also recorded.
// @Tags extraction
// @Accept  multipart/form-data
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Param   file formData file true "Capital call notice"
// @Param   commit query bool false "Record the draft"
// @Success 200 {object} dto.CapitalCallExtractionResponse
// @Failure 400 {object} map[string]string "Missing or empty document"
// @Failure 503 {object} map[string]string "Extraction unavailable"
// @Security BearerAuth
// @Router /funds/{fundID}/extract/capital-call [post]
func (h *extractionHandler) extractCapitalCall(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	doc, commit, ok := readDocument(c, logger)
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Extracting capital call", slog.String("fund_id", fundID), slog.String("filename", doc.Filename), slog.Bool("commit", commit))

	call, err := h.extractionService.ExtractCapitalCall(c.Request.Context(), fundID, doc, commit, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "extract capital call")
		return
	}

	c.JSON(http.StatusOK, dto.CapitalCallExtractionResponse{Draft: dto.ToCapitalCallResponse(call), Committed: commit})
}

// extractQuarterlyReport godoc
// @Summary Extract a quarterly report from a document
// @Description Reads a quarterly report and returns a normalized draft. With commit=true the draft is also written.
// @Tags extraction
// @Accept  multipart/form-data
// @Produce  json
// @Param   fundID path string true "Fund ID"
// @Param   file formData file true "Quarterly report"
// @Param   commit query bool false "Write the draft"
// @Success 200 {object} dto.QuarterlyReportExtractionResponse
// @Failure 400 {object} map[string]string "Missing or empty document"
// @Failure 503 {object} map[string]string "Extraction unavailable"
// @Security BearerAuth
// @Router /funds/{fundID}/extract/quarterly-report [post]
func (h *extractionHandler) extractQuarterlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fundID")

	doc, commit, ok := readDocument(c, logger)
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Extracting quarterly report", slog.String("fund_id", fundID), slog.String("filename", doc.Filename), slog.Bool("commit", commit))

	report, err := h.extractionService.ExtractQuarterlyReport(c.Request.Context(), fundID, doc, commit, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("fund_id", fundID)), err, "extract quarterly report")
		return
	}

	c.JSON(http.StatusOK, dto.QuarterlyReportExtractionResponse{Draft: dto.ToQuarterlyReportResponse(report), Committed: commit})
}
