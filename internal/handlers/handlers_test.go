package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/fund_ledger_app/internal/dto"
	"github.com/SscSPs/fund_ledger_app/internal/handlers"
	"github.com/SscSPs/fund_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testIssuer = "fund-ledger-test"

type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	jwtSecret      string
	userID         string
	mockFunds      *MockFundService
	mockCalls      *MockCapitalCallService
	mockLPMatrix   *MockLPMatrixService
	mockExtraction *MockExtractionService
	mockOverview   *MockOverviewService
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockFunds = new(MockFundService)
	suite.mockCalls = new(MockCapitalCallService)
	suite.mockLPMatrix = new(MockLPMatrixService)
	suite.mockExtraction = new(MockExtractionService)
	suite.mockOverview = new(MockOverviewService)

	suite.Require().NoError(handlers.RegisterValidators())
	cfg := &config.Config{JWTSecret: suite.jwtSecret, JWTIssuer: testIssuer, IsProduction: true, FOFCurrency: "USD"}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Fund:        suite.mockFunds,
		CapitalCall: suite.mockCalls,
		LPMatrix:    suite.mockLPMatrix,
		Extraction:  suite.mockExtraction,
		Overview:    suite.mockOverview,
	})
}

func (suite *HandlerTestSuite) do(method, url string, body []byte, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) doJSON(method, url, body string) *httptest.ResponseRecorder {
	return suite.do(method, url, []byte(body), "application/json")
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), "Failed to unmarshal response body")
}

// --- Routing and auth ---

func (suite *HandlerTestSuite) TestHealth_NoAuthRequired() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestAPI_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/funds", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFunds.AssertNotCalled(suite.T(), "ListFunds", mock.Anything)
}

// --- Funds ---

func (suite *HandlerTestSuite) TestCreateFund_Success() {
	fundID := uuid.NewString()
	suite.mockFunds.On("CreateFund", mock.Anything, mock.MatchedBy(func(r dto.CreateFundRequest) bool {
		return r.Name == "Fund X" && r.Commitment.Equal(decimal.NewFromInt(1000000)) && r.CurrencyCode == "USD"
	}), suite.userID).Return(&domain.Fund{
		FundID:       fundID,
		Name:         "Fund X",
		Commitment:   decimal.NewFromInt(1000000),
		CurrencyCode: "USD",
		Status:       domain.FundActive,
	}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/funds", `{"name":"Fund X","commitment":1000000,"currencyCode":"USD"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.FundResponse
	suite.decode(w, &res)
	suite.Equal(fundID, res.FundID)
	suite.Equal(domain.FundActive, res.Status)
	suite.mockFunds.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateFund_BadJSON() {
	w := suite.doJSON(http.MethodPost, "/api/v1/funds", `{"name":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
	suite.mockFunds.AssertNotCalled(suite.T(), "CreateFund", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateFund_UnsupportedCurrencyRejectedAtBinding() {
	w := suite.doJSON(http.MethodPost, "/api/v1/funds", `{"name":"Fund X","commitment":1000,"currencyCode":"GBP"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFunds.AssertNotCalled(suite.T(), "CreateFund", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateFund_ValidationErrorFromService() {
	suite.mockFunds.On("CreateFund", mock.Anything, mock.Anything, suite.userID).
		Return(nil, apperrors.NewValidationError("fund commitment must not be negative, got -5")).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/funds", `{"name":"Fund X","commitment":-5,"currencyCode":"USD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "must not be negative")
}

func (suite *HandlerTestSuite) TestListFunds_StoreUnavailableDegradesToEmpty() {
	suite.mockFunds.On("ListFunds", mock.Anything).
		Return(nil, apperrors.NewUnavailableError("failed to list funds", assertErr)).Once()

	w := suite.do(http.MethodGet, "/api/v1/funds", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListFundsResponse
	suite.decode(w, &res)
	suite.Empty(res.Funds)
	suite.NotEmpty(res.Warning)
}

func (suite *HandlerTestSuite) TestGetFund_NotFound() {
	suite.mockFunds.On("GetFundByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("fund missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/funds/missing", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteFund_NoContent() {
	suite.mockFunds.On("DeleteFund", mock.Anything, "fund-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/funds/fund-1", nil, "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockFunds.AssertExpectations(suite.T())
}

// --- Capital calls ---

func (suite *HandlerTestSuite) TestListCalls_ReportsTotals() {
	calls := []domain.CapitalCall{
		{CallID: "c1", FundID: "fund-1", CallNumber: 1, Amount: decimal.NewFromInt(100000)},
		{CallID: "c2", FundID: "fund-1", CallNumber: 2, Amount: decimal.NewFromInt(50000), IsFuture: true},
	}
	suite.mockCalls.On("ListCalls", mock.Anything, "fund-1").Return(calls, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/funds/fund-1/capital-calls", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.ListCapitalCallsResponse
	suite.decode(w, &res)
	suite.Len(res.Calls, 2)
	suite.True(res.TotalCalled.Equal(decimal.NewFromInt(100000)), "future calls are not counted as called")
	suite.True(res.FutureCalled.Equal(decimal.NewFromInt(50000)))
	suite.Empty(res.Warning)
}

func (suite *HandlerTestSuite) TestRecordCall_StoreDuplicateKeyMapsToConflict() {
	suite.mockCalls.On("RecordCall", mock.Anything, "fund-1", mock.Anything, suite.userID).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "duplicate", apperrors.ErrDuplicate)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/funds/fund-1/capital-calls", `{"callNumber":1,"callDate":"2024-03-01","amount":100}`)

	suite.Equal(http.StatusConflict, w.Code)
}

// --- LP matrix ---

func (suite *HandlerTestSuite) TestSetPaymentStatus_Success() {
	suite.mockLPMatrix.On("SetPaymentStatus", mock.Anything, "call-1", "inv-b", true, suite.userID).
		Return(&domain.PaymentChange{LPCallID: "call-1", InvestorID: "inv-b", IsPaid: true, Changed: true, Revision: 3}, nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/lp-calls/call-1/payments/inv-b", `{"isPaid":true}`)

	suite.Equal(http.StatusOK, w.Code)
	var res domain.PaymentChange
	suite.decode(w, &res)
	suite.True(res.Changed)
	suite.Equal(int64(3), res.Revision)
}

func (suite *HandlerTestSuite) TestSetPaymentStatus_MissingFlag() {
	w := suite.doJSON(http.MethodPut, "/api/v1/lp-calls/call-1/payments/inv-b", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLPMatrix.AssertNotCalled(suite.T(), "SetPaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestBatchSave_StaleRevisionConflicts() {
	suite.mockLPMatrix.On("BatchSave", mock.Anything, mock.MatchedBy(func(r dto.BatchSaveRequest) bool {
		return len(r.Cells) == 1 && r.ExpectedRevisions["call-1"] == 2
	}), suite.userID).Return(nil, apperrors.NewConflictError("LP call call-1 was modified")).Once()

	body := `{"cells":[{"lpCallID":"call-1","investorID":"inv-a","isPaid":true}],"expectedRevisions":{"call-1":2}}`
	w := suite.doJSON(http.MethodPost, "/api/v1/lp-matrix/batch", body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLPMatrix.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetMatrix_StoreUnavailableDegradesToEmpty() {
	suite.mockLPMatrix.On("GetMatrix", mock.Anything).
		Return(nil, apperrors.NewUnavailableError("failed to load LP snapshot", assertErr)).Once()

	w := suite.do(http.MethodGet, "/api/v1/lp-matrix", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.LPMatrixResponse
	suite.decode(w, &res)
	suite.Empty(res.Calls)
	suite.True(res.OutstandingTotal.IsZero())
	suite.Equal("USD", res.CurrencyCode)
	suite.NotEmpty(res.Warning)
}

func (suite *HandlerTestSuite) TestGetMatrix_DisplaysTotalsInFundCurrency() {
	suite.mockLPMatrix.On("GetMatrix", mock.Anything).Return(&domain.LPMatrix{
		CommitmentBase:   decimal.NewFromInt(3000000),
		TotalCallPct:     decimal.NewFromInt(10),
		Calls:            []domain.LPCallReconciliation{},
		Investors:        []domain.InvestorTotals{},
		RequiredTotal:    decimal.NewFromInt(300000),
		PaidTotal:        decimal.NewFromInt(200000),
		OutstandingTotal: decimal.NewFromInt(100000),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/lp-matrix", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.LPMatrixResponse
	suite.decode(w, &res)
	suite.True(res.OutstandingTotal.Equal(decimal.NewFromInt(100000)))
	suite.Equal("$100,000.00", res.OutstandingTotalDisplay)
	suite.Empty(res.Warning)
}

// --- Extraction ---

func (suite *HandlerTestSuite) multipartBody(filename string, content []byte) ([]byte, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	suite.Require().NoError(err)
	_, err = fw.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func (suite *HandlerTestSuite) TestExtractCapitalCall_CommitsWhenAsked() {
	content := []byte("%PDF-1.4 capital call notice")
	body, contentType := suite.multipartBody("notice.pdf", content)

	suite.mockExtraction.On("ExtractCapitalCall", mock.Anything, "fund-1", mock.MatchedBy(func(d domain.Document) bool {
		return d.Filename == "notice.pdf" && d.MIMEType == "application/pdf" && bytes.Equal(d.Content, content)
	}), true, suite.userID).Return(&domain.CapitalCall{
		CallID:     "c4",
		FundID:     "fund-1",
		CallNumber: 4,
		Amount:     decimal.NewFromInt(250000),
		IsFuture:   true,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/funds/fund-1/extract/capital-call?commit=true", body, contentType)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CapitalCallExtractionResponse
	suite.decode(w, &res)
	suite.True(res.Committed)
	suite.Equal(4, res.Draft.CallNumber)
	suite.mockExtraction.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestExtractCapitalCall_MissingFile() {
	w := suite.do(http.MethodPost, "/api/v1/funds/fund-1/extract/capital-call", nil, "multipart/form-data; boundary=x")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExtraction.AssertNotCalled(suite.T(), "ExtractCapitalCall", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestExtractQuarterlyReport_ExtractorDown() {
	body, contentType := suite.multipartBody("q3.pdf", []byte("%PDF-1.4 report"))
	suite.mockExtraction.On("ExtractQuarterlyReport", mock.Anything, "fund-1", mock.Anything, false, suite.userID).
		Return(nil, apperrors.NewUnavailableError("document extraction failed", assertErr)).Once()

	w := suite.do(http.MethodPost, "/api/v1/funds/fund-1/extract/quarterly-report", body, contentType)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestExtract_InvalidCommitFlag() {
	body, contentType := suite.multipartBody("q3.pdf", []byte("%PDF-1.4 report"))

	w := suite.do(http.MethodPost, "/api/v1/funds/fund-1/extract/quarterly-report?commit=maybe", body, contentType)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.True(strings.Contains(w.Body.String(), "commit"))
}

// --- Overview ---

func (suite *HandlerTestSuite) TestGetOverview_FormatsTotals() {
	suite.mockOverview.On("GetOverview", mock.Anything).Return(&domain.Overview{
		ActiveFunds:   1,
		FundsByStatus: map[domain.FundStatus]int{domain.FundActive: 1},
		Totals: []domain.CurrencyTotals{{
			CurrencyCode: "USD",
			Commitment:   decimal.NewFromInt(1000000),
			TotalCalled:  decimal.NewFromInt(250000),
			Uncalled:     decimal.NewFromInt(750000),
			FundCount:    1,
		}},
		UpcomingCalls: []domain.UpcomingCall{},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/overview", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var res dto.OverviewResponse
	suite.decode(w, &res)
	suite.Equal(1, res.ActiveFunds)
	suite.Require().Len(res.Totals, 1)
	suite.Equal("$1,000,000.00", res.Totals[0].CommitmentDisplay)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
