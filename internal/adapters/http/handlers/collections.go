package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/domain"
)

// CollectionHandler exposes collection management over HTTP.
type CollectionHandler struct {
	store *app.QuoteStore
}

// NewCollectionHandler creates a collection handler.
func NewCollectionHandler(store *app.QuoteStore) *CollectionHandler {
	return &CollectionHandler{store: store}
}

// CollectionResponse is the HTTP shape of a collection.
type CollectionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	QuoteCount  int       `json:"quoteCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCollectionResponse(c domain.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		QuoteCount:  c.QuoteCount,
		CreatedAt:   c.CreatedAt,
	}
}

// createCollectionRequest is the body of POST /api/v1/collections.
type createCollectionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// List handles GET /api/v1/collections.
func (h *CollectionHandler) List(c *gin.Context) {
	collections := h.store.Collections()

	items := make([]CollectionResponse, 0, len(collections))
	for _, col := range collections {
		items = append(items, toCollectionResponse(col))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create handles POST /api/v1/collections.
func (h *CollectionHandler) Create(c *gin.Context) {
	var req createCollectionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			err.Error(),
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	before := len(h.store.Collections())
	h.store.CreateCollection(c.Request.Context(), req.Name, req.Description)

	collections := h.store.Collections()
	if len(collections) == before {
		// Blank name or a backend rejection; the store treats both as
		// silent no-ops, so report nothing was created.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusCreated, toCollectionResponse(collections[0]))
}

// Delete handles DELETE /api/v1/collections/:id.
func (h *CollectionHandler) Delete(c *gin.Context) {
	h.store.DeleteCollection(c.Request.Context(), c.Param("id"))

	c.Status(http.StatusNoContent)
}

// Quotes handles GET /api/v1/collections/:id/quotes.
// Returns the collection's quotes in membership order.
func (h *CollectionHandler) Quotes(c *gin.Context) {
	quotes := h.store.CollectionQuotes(c.Param("id"))

	items := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, QuoteResponse{
			ID:       q.ID,
			Text:     q.Text,
			Author:   q.Author,
			Category: string(q.Category),
			Favorite: h.store.IsFavorite(q.ID),
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddQuote handles POST /api/v1/collections/:id/quotes/:quoteId.
func (h *CollectionHandler) AddQuote(c *gin.Context) {
	h.store.AddQuoteToCollection(c.Request.Context(), c.Param("id"), c.Param("quoteId"))

	c.Status(http.StatusNoContent)
}

// RemoveQuote handles DELETE /api/v1/collections/:id/quotes/:quoteId.
func (h *CollectionHandler) RemoveQuote(c *gin.Context) {
	h.store.RemoveQuoteFromCollection(c.Request.Context(), c.Param("id"), c.Param("quoteId"))

	c.Status(http.StatusNoContent)
}

// RegisterCollectionRoutes registers the collection routes, which
// require a signed-in user.
func (h *CollectionHandler) RegisterCollectionRoutes(rg *gin.RouterGroup) {
	collections := rg.Group("/collections")
	collections.GET("", h.List)
	collections.POST("", h.Create)
	collections.DELETE("/:id", h.Delete)
	collections.GET("/:id/quotes", h.Quotes)
	collections.POST("/:id/quotes/:quoteId", h.AddQuote)
	collections.DELETE("/:id/quotes/:quoteId", h.RemoveQuote)
}
