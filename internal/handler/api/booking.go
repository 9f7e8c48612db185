package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "hall-booking/internal/handler/dto/request"
	resdto "hall-booking/internal/handler/dto/response"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit booking request
// @Description Price the requested slot and store a booking inquiry for managers to follow up
// @Tags booking-requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking-requests [post]
func (h *BookingHandler) SubmitBookingRequest(c *gin.Context) {
	var req reqdto.CreateBookingRequest
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

	view, err := h.bookingCommands.SubmitBookingRequest(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid customer details",
			})
			return
		}
		respondQuoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRequestView(view))
}

// @Summary List booking requests
// @Description List booking requests with optional filters
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param hall_id query string false "Filter by hall ID"
// @Param status query string false "Filter by status (new/contacted/closed)"
// @Param date_from query string false "Filter by event date from (YYYY-MM-DD)"
// @Param date_to query string false "Filter by event date to (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/booking-requests [get]
func (h *BookingHandler) ListBookingRequests(c *gin.Context) {
	filter, err := parseBookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.bookingQueries.ListBookingRequests(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequestViews(views))
}

// @Summary Get booking request
// @Description Get one booking request by ID
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking request ID"
// @Success 200 {object} resdto.BookingRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/booking-requests/{id} [get]
func (h *BookingHandler) GetBookingRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking request ID",
		})
		return
	}

	view, err := h.bookingQueries.GetBookingRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRequestView(view))
}

// @Summary Update booking request status
// @Description Move a booking request between new/contacted/closed
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking request ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/booking-requests/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking request ID",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatusValue):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status value",
			})
		case errors.Is(err, commands.ErrBookingRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func parseBookingFilter(c *gin.Context) (queries.BookingRequestFilter, error) {
	var filter queries.BookingRequestFilter

	if raw := c.Query("hall_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid hall_id filter")
		}
		filter.HallID = &id
	}
	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid date_from filter")
		}
		filter.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid date_to filter")
		}
		filter.DateTo = &t
	}
	return filter, nil
}
