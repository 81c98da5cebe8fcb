package api

import (
	"errors"
	"net/http"

	reqdto "stayspot/internal/handler/dto/request"
	resdto "stayspot/internal/handler/dto/response"
	"stayspot/internal/handler/httperr"
	"stayspot/internal/handler/middleware"
	"stayspot/internal/pkg/errs"
	"stayspot/internal/usecase/commands"
	"stayspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create booking
// @Description Book a spot for a date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.BookingDatesRequest true "Stay dates"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing"), "Internal server error", nil)
		return
	}

	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
		return
	}

	var req reqdto.BookingDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Bad Request", nil)
		return
	}

	start, end, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", map[string]string{
			"startDate": err.Error(),
		})
		return
	}

	result, err := h.commands.CreateBooking(c.Request.Context(), spotID, userID, commands.CreateBookingRequest{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings for a spot
// @Description Owners see every booking with the booker; others see occupied future dates only
// @Tags bookings
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/bookings [get]
func (h *BookingHandler) ListSpotBookings(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
		return
	}

	// Anonymous requesters get the public shaping.
	requesterID, _ := middleware.GetUserID(c)

	view, err := h.queries.ListBySpot(c.Request.Context(), spotID, requesterID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpotBookingsView(view))
}

// @Summary List current user's bookings
// @Description All bookings of the requester joined with spot summaries
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/current [get]
func (h *BookingHandler) GetCurrentBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing"), "Internal server error", nil)
		return
	}

	items, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCurrentBookingItems(items))
}

// @Summary Reschedule booking
// @Description Change the stay dates of an existing booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingDatesRequest true "New stay dates"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing"), "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking couldn't be found", nil)
		return
	}

	var req reqdto.BookingDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Bad Request", nil)
		return
	}

	start, end, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", map[string]string{
			"startDate": err.Error(),
		})
		return
	}

	err = h.commands.UpdateBooking(c.Request.Context(), bookingID, userID, commands.UpdateBookingRequest{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete booking
// @Description Cancel a booking that has not started yet
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing"), "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking couldn't be found", nil)
		return
	}

	if err := h.commands.DeleteBooking(c.Request.Context(), bookingID, userID); err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Successfully deleted"})
}

// respondBookingError maps each outcome of the booking rules to its status
// and payload. Conflicts always carry both field messages no matter which
// edge collided.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound), errors.Is(err, queries.ErrSpotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
	case errors.Is(err, commands.ErrBookingNotFound), errors.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking couldn't be found", nil)
	case errors.Is(err, commands.ErrInvalidDateRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", map[string]string{
			"endDate": "endDate cannot be on or before startDate",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Sorry, this spot is already booked for the specified dates", map[string]string{
			"startDate": "Start date conflicts with an existing booking",
			"endDate":   "End date conflicts with an existing booking",
		})
	case errors.Is(err, commands.ErrOwnerBooking), errors.Is(err, commands.ErrBookingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, commands.ErrPastBookingModified):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Past bookings can't be modified", nil)
	case errors.Is(err, commands.ErrStartedBookingDeleted):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Bookings that have been started can't be deleted", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
