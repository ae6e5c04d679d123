package extraction

import "google.golang.org/genai"

const capitalCallInstruction = `You read capital call notices sent by private equity and venture funds to
their limited partners. Return only the fields you can find in the document.
Use null for anything that is not stated. Dates are ISO 8601 (YYYY-MM-DD).
Amounts are plain numbers in the fund currency without separators or symbols.
"amount" is the total called from this investor; the breakdown fields split it
into investments, management fee, fund expenses and GP contribution.`

const quarterlyReportInstruction = `You read quarterly reports sent by private equity and venture funds to their
limited partners. Return only the fields you can find in the document. Use
null for anything that is not stated. "nav" is this investor's net asset
value. tvpi, dpi and rvpi are multiples such as 1.42. irr is a percentage
such as 12.5 for 12.5%. report_date is ISO 8601 (YYYY-MM-DD).`

func nullable(t genai.Type, description string) *genai.Schema {
	isNullable := true
	return &genai.Schema{Type: t, Description: description, Nullable: &isNullable}
}

func capitalCallSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"call_number":     nullable(genai.TypeInteger, "Sequence number of the call"),
			"call_date":       nullable(genai.TypeString, "Date of the notice"),
			"payment_date":    nullable(genai.TypeString, "Date payment is due"),
			"amount":          nullable(genai.TypeNumber, "Total amount called"),
			"investments":     nullable(genai.TypeNumber, "Portion called for investments"),
			"mgmt_fee":        nullable(genai.TypeNumber, "Portion called for management fees"),
			"fund_expenses":   nullable(genai.TypeNumber, "Portion called for fund expenses"),
			"gp_contribution": nullable(genai.TypeNumber, "GP contribution"),
			"notes":           nullable(genai.TypeString, "Anything else worth keeping"),
		},
		PropertyOrdering: []string{
			"call_number", "call_date", "payment_date", "amount",
			"investments", "mgmt_fee", "fund_expenses", "gp_contribution", "notes",
		},
	}
}

func quarterlyReportSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"year":        nullable(genai.TypeInteger, "Reporting year"),
			"quarter":     nullable(genai.TypeInteger, "Reporting quarter, 1 to 4"),
			"report_date": nullable(genai.TypeString, "Period end or report date"),
			"nav":         nullable(genai.TypeNumber, "Net asset value"),
			"tvpi":        nullable(genai.TypeNumber, "Total value to paid-in"),
			"dpi":         nullable(genai.TypeNumber, "Distributions to paid-in"),
			"rvpi":        nullable(genai.TypeNumber, "Residual value to paid-in"),
			"irr":         nullable(genai.TypeNumber, "Net IRR in percent"),
			"notes":       nullable(genai.TypeString, "Anything else worth keeping"),
		},
		PropertyOrdering: []string{
			"year", "quarter", "report_date", "nav", "tvpi", "dpi", "rvpi", "irr", "notes",
		},
	}
}
