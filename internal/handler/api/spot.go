package api

import (
	"errors"
	"net/http"
	"strconv"

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

type SpotHandler struct {
	commands commands.SpotCommands
	queries  queries.SpotQueries
}

func NewSpotHandler(cmds commands.SpotCommands, qrs queries.SpotQueries) *SpotHandler {
	return &SpotHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create spot
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SpotRequest true "Spot"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /spots [post]
func (h *SpotHandler) CreateSpot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing"), "Internal server error", nil)
		return
	}

	var req reqdto.SpotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Bad Request", nil)
		return
	}

	result, err := h.commands.CreateSpot(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		respondSpotError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), result.SpotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSpotView(view))
}

// @Summary Get spot
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [get]
func (h *SpotHandler) GetSpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), spotID)
	if err != nil {
		respondSpotError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary List spots
// @Tags spots
// @Produce json
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.SpotListResponse
// @Router /spots [get]
func (h *SpotHandler) ListSpots(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.queries.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpotViews(views, next))
}

// @Summary Update spot
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.SpotRequest true "Spot"
// @Success 200 {object} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [put]
func (h *SpotHandler) UpdateSpot(c *gin.Context) {
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

	var req reqdto.SpotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Bad Request", nil)
		return
	}

	if err := h.commands.UpdateSpot(c.Request.Context(), spotID, req.ToCommand(), userID); err != nil {
		respondSpotError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), spotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Delete spot
// @Description Deleting a spot removes its bookings and reviews as well
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /spots/{id} [delete]
func (h *SpotHandler) DeleteSpot(c *gin.Context) {
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

	if err := h.commands.DeleteSpot(c.Request.Context(), spotID, userID); err != nil {
		respondSpotError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Successfully deleted"})
}

func respondSpotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSpotNotFound), errors.Is(err, queries.ErrSpotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
	case errors.Is(err, commands.ErrSpotNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
