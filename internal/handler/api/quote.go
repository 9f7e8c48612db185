package api

import (
	"errors"
	"net/http"

	"hall-booking/internal/domain/pricing"
	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Compute a quote
// @Description Price a hall rental for a date, time range and extras without creating anything
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	quote, err := h.quoteQueries.GetQuote(c.Request.Context(), params)
	if err != nil {
		respondQuoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// respondQuoteError maps quoting failures for both the public quote
// endpoint and booking submission, which prices the same way.
func respondQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrHallNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hall not found",
		})
	case errors.Is(err, queries.ErrExtraNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown extra service code",
		})
	case errors.Is(err, pricing.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time range",
		})
	case errors.Is(err, pricing.ErrInvalidGuestCount):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest count",
		})
	case errors.Is(err, pricing.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid extra quantity",
		})
	case errors.Is(err, pricing.ErrNoPriceSet):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No price set covers the requested date",
		})
	case errors.Is(err, pricing.ErrNoRateConfigured):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No rate configured for the hall under the resolved price set",
		})
	case errors.Is(err, pricing.ErrNoExtraPriceConfigured):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No price configured for an extra under the resolved price set",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
