package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen/futurama-quotes/internal/domain"
	"github.com/jsamuelsen/futurama-quotes/internal/platform/logging"
)

// Tool inputs. Required fields are non-pointers; optional fields are
// pointers so the generated schema marks them optional and "absent" is
// distinguishable from a zero value.

type listQuotesInput struct{}

type getQuoteInput struct {
	QuoteID int64 `json:"quote_id" jsonschema:"The ID of the quote to retrieve"`
}

type createQuoteInput struct {
	Text      string `json:"text"             jsonschema:"The quote text"`
	Character string `json:"character"        jsonschema:"Character who said the quote"`
	Episode   string `json:"episode"          jsonschema:"Episode name"`
	Season    *int   `json:"season,omitempty" jsonschema:"Season number (optional)"`
	Year      *int   `json:"year,omitempty"   jsonschema:"Year (optional)"`
}

type updateQuoteInput struct {
	QuoteID   int64   `json:"quote_id"            jsonschema:"The ID of the quote to update"`
	Text      *string `json:"text,omitempty"      jsonschema:"New quote text (optional)"`
	Character *string `json:"character,omitempty" jsonschema:"New character name (optional)"`
	Episode   *string `json:"episode,omitempty"   jsonschema:"New episode name (optional)"`
	Season    *int    `json:"season,omitempty"    jsonschema:"New season number (optional)"`
	Year      *int    `json:"year,omitempty"      jsonschema:"New year (optional)"`
}

type deleteQuoteInput struct {
	QuoteID int64 `json:"quote_id" jsonschema:"The ID of the quote to delete"`
}

type healthCheckInput struct{}

// quotePayload is the structured representation of a quote in tool
// results.
type quotePayload struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Character string    `json:"character"`
	Episode   string    `json:"episode"`
	Season    *int      `json:"season,omitempty"`
	Year      *int      `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toPayload(q *domain.Quote) quotePayload {
	return quotePayload{
		ID:        q.ID,
		Text:      q.Text,
		Character: q.Character,
		Episode:   q.Episode,
		Season:    q.Season,
		Year:      q.Year,
		CreatedAt: q.CreatedAt,
	}
}

type listQuotesOutput struct {
	Count  int            `json:"count"`
	Quotes []quotePayload `json:"quotes"`
}

type quoteOutput struct {
	Quote quotePayload `json:"quote"`
}

type deleteQuoteOutput struct {
	Message string `json:"message"`
}

type healthCheckOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// registerTools declares the static tool registry. The six tools map
// one-to-one onto the quote API surface.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_quotes",
		Description: "Get all Futurama quotes",
	}, s.listQuotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_quote",
		Description: "Get a specific quote by ID",
	}, s.getQuote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_quote",
		Description: "Create a new Futurama quote",
	}, s.createQuote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_quote",
		Description: "Update an existing quote",
	}, s.updateQuote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_quote",
		Description: "Delete a quote by ID",
	}, s.deleteQuote)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "health_check",
		Description: "Check API health",
	}, s.healthCheck)
}

// errorResult renders a failure as a tool error without failing the
// MCP call itself: protocol errors are reserved for broken requests,
// domain failures go back to the model as readable text.
func errorResult[Out any](err error) (*mcp.CallToolResult, Out, error) {
	var zero Out

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: renderError(err)}},
		IsError: true,
	}, zero, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func (s *Server) listQuotes(ctx context.Context, _ *mcp.CallToolRequest, _ listQuotesInput) (*mcp.CallToolResult, listQuotesOutput, error) {
	quotes, err := s.api.ListQuotes(ctx)
	if err != nil {
		return errorResult[listQuotesOutput](err)
	}

	out := listQuotesOutput{
		Count:  len(quotes),
		Quotes: make([]quotePayload, 0, len(quotes)),
	}
	for i := range quotes {
		out.Quotes = append(out.Quotes, toPayload(&quotes[i]))
	}

	return textResult(renderQuoteList(quotes)), out, nil
}

func (s *Server) getQuote(ctx context.Context, _ *mcp.CallToolRequest, in getQuoteInput) (*mcp.CallToolResult, quoteOutput, error) {
	if err := validQuoteID(in.QuoteID); err != nil {
		return errorResult[quoteOutput](err)
	}

	quote, err := s.api.GetQuote(ctx, in.QuoteID)
	if err != nil {
		return errorResult[quoteOutput](err)
	}

	return textResult(renderQuoteDetail(quote)), quoteOutput{Quote: toPayload(quote)}, nil
}

func (s *Server) createQuote(ctx context.Context, _ *mcp.CallToolRequest, in createQuoteInput) (*mcp.CallToolResult, quoteOutput, error) {
	quote, err := s.api.CreateQuote(ctx, domain.QuoteDraft{
		Text:      in.Text,
		Character: in.Character,
		Episode:   in.Episode,
		Season:    in.Season,
		Year:      in.Year,
	})
	if err != nil {
		return errorResult[quoteOutput](err)
	}

	logging.FromContext(ctx).Info("quote created via tool",
		slog.Int64("quote_id", quote.ID),
	)

	return textResult(renderCreated(quote)), quoteOutput{Quote: toPayload(quote)}, nil
}

func (s *Server) updateQuote(ctx context.Context, _ *mcp.CallToolRequest, in updateQuoteInput) (*mcp.CallToolResult, quoteOutput, error) {
	if err := validQuoteID(in.QuoteID); err != nil {
		return errorResult[quoteOutput](err)
	}

	quote, err := s.api.UpdateQuote(ctx, in.QuoteID, domain.QuoteUpdate{
		Text:      in.Text,
		Character: in.Character,
		Episode:   in.Episode,
		Season:    in.Season,
		Year:      in.Year,
	})
	if err != nil {
		return errorResult[quoteOutput](err)
	}

	return textResult(renderUpdated(quote)), quoteOutput{Quote: toPayload(quote)}, nil
}

func (s *Server) deleteQuote(ctx context.Context, _ *mcp.CallToolRequest, in deleteQuoteInput) (*mcp.CallToolResult, deleteQuoteOutput, error) {
	if err := validQuoteID(in.QuoteID); err != nil {
		return errorResult[deleteQuoteOutput](err)
	}

	if err := s.api.DeleteQuote(ctx, in.QuoteID); err != nil {
		return errorResult[deleteQuoteOutput](err)
	}

	const message = "Quote deleted successfully"

	logging.FromContext(ctx).Info("quote deleted via tool",
		slog.Int64("quote_id", in.QuoteID),
	)

	return textResult(renderDeleted(in.QuoteID, message)),
		deleteQuoteOutput{Message: message}, nil
}

func (s *Server) healthCheck(ctx context.Context, _ *mcp.CallToolRequest, _ healthCheckInput) (*mcp.CallToolResult, healthCheckOutput, error) {
	status, err := s.api.CheckHealth(ctx)
	if err != nil {
		return errorResult[healthCheckOutput](err)
	}

	return textResult(renderHealth(status)), healthCheckOutput{
		Status:  status.Status,
		Message: status.Message,
	}, nil
}

// validQuoteID rejects non-positive ids before they hit the API, where
// they could otherwise alias URL paths in the remote backend.
func validQuoteID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("quote_id", "must be a positive integer")
	}

	return nil
}
