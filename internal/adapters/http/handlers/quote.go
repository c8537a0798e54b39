// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/futurama-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/futurama-quotes/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// quoteID parses the :id path parameter. A non-numeric or non-positive
// id is a bad request, not a not-found.
func quoteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"quote ID must be a positive integer",
		).WithTraceID(dto.GetTraceID(c)))

		return 0, false
	}

	return id, true
}

// ListQuotes handles GET /api/v1/quotes
// Returns all quotes in insertion order.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteListResponse(quotes))
}

// GetQuote handles GET /api/v1/quotes/:id
// Returns a specific quote by its identifier.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// CreateQuote handles POST /api/v1/quotes
// Creates a new quote and returns it with its assigned id.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), req.ToDraft())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// UpdateQuote handles PUT /api/v1/quotes/:id
// Applies a partial update; absent fields are left unchanged.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	quote, err := h.service.UpdateQuote(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// DeleteQuote handles DELETE /api/v1/quotes/:id
// Removes a quote permanently; its id is never reused.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteQuote(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuoteResponse{
		Message: "Quote deleted successfully",
	})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/:id", h.GetQuote)
	quotes.POST("", h.CreateQuote)
	quotes.PUT("/:id", h.UpdateQuote)
	quotes.DELETE("/:id", h.DeleteQuote)
}
