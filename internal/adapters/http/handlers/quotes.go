package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quotevault/quotevault/internal/adapters/http/dto"
	"github.com/quotevault/quotevault/internal/app"
	"github.com/quotevault/quotevault/internal/domain"
)

// QuoteHandler exposes the quote store over HTTP: the quote list with
// filters, search, the daily pick, and the favorite set.
type QuoteHandler struct {
	store *app.QuoteStore
}

// NewQuoteHandler creates a quote handler.
func NewQuoteHandler(store *app.QuoteStore) *QuoteHandler {
	return &QuoteHandler{store: store}
}

// QuoteResponse is the HTTP shape of a quote.
type QuoteResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	Favorite   bool   `json:"favorite"`
	QuoteOfDay bool   `json:"quoteOfDay,omitempty"`
}

func (h *QuoteHandler) toQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		Category:   string(q.Category),
		Favorite:   h.store.IsFavorite(q.ID),
		QuoteOfDay: q.QuoteOfDay,
	}
}

func (h *QuoteHandler) toQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, h.toQuoteResponse(q))
	}

	return out
}

// listQuotesRequest carries the filter and pagination query parameters.
type listQuotesRequest struct {
	dto.PaginationRequest

	Category string `form:"category"`
	Query    string `form:"q"`
}

// ListQuotes handles GET /api/v1/quotes.
// Applies the store's category and text filters, then paginates.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req listQuotesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			err.Error(),
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	if req.Category != "" {
		category, ok := domain.ParseCategory(req.Category)
		if !ok {
			dto.HandleError(c, domain.NewValidationError("category", "unknown category "+req.Category))
			return
		}

		h.store.SetSelectedCategory(&category)
	} else {
		h.store.SetSelectedCategory(nil)
	}

	h.store.SetSearchQuery(req.Query)

	quotes := h.store.FilteredQuotes()
	limit := req.GetLimit()

	// Cursor position is the id of the last item on the previous page.
	if cursor, err := req.DecodeCursor(); err == nil {
		for i, q := range quotes {
			if q.ID == cursor.ID {
				quotes = quotes[i+1:]
				break
			}
		}
	} else if !errors.Is(err, dto.ErrNoCursor) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"invalid cursor",
		).WithTraceID(dto.GetTraceID(c)))
		return
	}

	if len(quotes) > limit {
		quotes = quotes[:limit+1]
	}

	page := dto.NewPaginatedResponse(h.toQuoteResponses(quotes), limit, func(q QuoteResponse) *dto.CursorData {
		return dto.NewCursor("id", q.ID, q.ID)
	})

	c.JSON(http.StatusOK, page)
}

// SearchQuotes handles GET /api/v1/quotes/search.
// One-shot search across text, author, and category.
func (h *QuoteHandler) SearchQuotes(c *gin.Context) {
	quotes := h.store.SearchQuotes(c.Query("q"))

	c.JSON(http.StatusOK, gin.H{"items": h.toQuoteResponses(quotes)})
}

// QuoteOfDay handles GET /api/v1/quotes/of-day.
func (h *QuoteHandler) QuoteOfDay(c *gin.Context) {
	quote := h.store.QuoteOfDay()
	if quote == nil {
		h.store.FetchQuoteOfDay(c.Request.Context())
		quote = h.store.QuoteOfDay()
	}

	c.JSON(http.StatusOK, h.toQuoteResponse(*quote))
}

// Refresh handles POST /api/v1/quotes/refresh.
// Re-fetches the quote list from the backend.
func (h *QuoteHandler) Refresh(c *gin.Context) {
	h.store.FetchQuotes(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"count": len(h.store.Quotes())})
}

// ListFavorites handles GET /api/v1/favorites.
func (h *QuoteHandler) ListFavorites(c *gin.Context) {
	byID := make(map[string]domain.Quote)
	for _, q := range h.store.Quotes() {
		byID[q.ID] = q
	}

	items := make([]QuoteResponse, 0)
	for _, id := range h.store.Favorites() {
		if q, ok := byID[id]; ok {
			items = append(items, h.toQuoteResponse(q))
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleFavorite handles POST /api/v1/favorites/:quoteId/toggle.
func (h *QuoteHandler) ToggleFavorite(c *gin.Context) {
	quoteID := c.Param("quoteId")

	h.store.ToggleFavorite(c.Request.Context(), quoteID)

	c.JSON(http.StatusOK, gin.H{
		"quoteId":  quoteID,
		"favorite": h.store.IsFavorite(quoteID),
	})
}

// RegisterQuoteRoutes registers the public quote routes.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/search", h.SearchQuotes)
	quotes.GET("/of-day", h.QuoteOfDay)
	quotes.POST("/refresh", h.Refresh)
}

// RegisterFavoriteRoutes registers the favorite routes, which require a
// signed-in user.
func (h *QuoteHandler) RegisterFavoriteRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.GET("", h.ListFavorites)
	favorites.POST("/:quoteId/toggle", h.ToggleFavorite)
}
