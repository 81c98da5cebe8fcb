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

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, qrs queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create review
// @Description Post a review for a spot; one review per user per spot
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /spots/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
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

	var req reqdto.CreateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Bad Request", nil)
		return
	}

	result, err := h.commands.CreateReview(c.Request.Context(), spotID, req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
		case errors.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "User already has a review for this spot", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Bad Request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary List reviews for a spot
// @Tags reviews
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 404 {object} httperr.Response
// @Router /spots/{id}/reviews [get]
func (h *ReviewHandler) ListSpotReviews(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
		return
	}

	views, err := h.queries.ListBySpot(c.Request.Context(), spotID)
	if err != nil {
		if errors.Is(err, queries.ErrSpotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot couldn't be found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}
