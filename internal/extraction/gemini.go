package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/fund_ledger_app/internal/core/ports/services"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyResponse is returned when the model produced no candidate text.
var ErrEmptyResponse = errors.New("extractor returned no content")

// GeminiExtractor reads capital call notices and quarterly reports with a
// Gemini model constrained to a JSON response schema.
type GeminiExtractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ portssvc.DocumentExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor creates an extractor bound to the Gemini API.
func NewGeminiExtractor(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiExtractor{client: client, model: model, timeout: timeout}, nil
}

func (g *GeminiExtractor) ExtractCapitalCall(ctx context.Context, doc domain.Document) (*domain.ExtractedCapitalCall, error) {
	text, err := g.generate(ctx, doc, capitalCallInstruction, capitalCallSchema())
	if err != nil {
		return nil, err
	}
	var out domain.ExtractedCapitalCall
	if err := decodeResponse(text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GeminiExtractor) ExtractQuarterlyReport(ctx context.Context, doc domain.Document) (*domain.ExtractedQuarterlyReport, error) {
	text, err := g.generate(ctx, doc, quarterlyReportInstruction, quarterlyReportSchema())
	if err != nil {
		return nil, err
	}
	var out domain.ExtractedQuarterlyReport
	if err := decodeResponse(text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GeminiExtractor) generate(ctx context.Context, doc domain.Document, instruction string, schema *genai.Schema) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	mimeType := doc.MIMEType
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(doc.Content, mimeType),
			genai.NewPartFromText("Extract the fields from " + doc.Filename + "."),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	slog.DebugContext(ctx, "Document extracted",
		slog.String("model", g.model),
		slog.String("filename", doc.Filename),
		slog.Duration("took", time.Since(start)))

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// decodeResponse parses model JSON, tolerating a markdown code fence around it.
func decodeResponse(text string, v any) error {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("failed to decode extractor response: %w", err)
	}
	return nil
}
