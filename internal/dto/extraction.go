package dto

// CapitalCallExtractionResponse is a normalized capital call read from a
// document. Committed is true when the draft was also recorded.
type CapitalCallExtractionResponse struct {
	Draft     CapitalCallResponse `json:"draft"`
	Committed bool                `json:"committed"`
}

// QuarterlyReportExtractionResponse is a normalized report read from a document.
type QuarterlyReportExtractionResponse struct {
	Draft     QuarterlyReportResponse `json:"draft"`
	Committed bool                    `json:"committed"`
}
