//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"stayspot/internal/domain/user"
	"stayspot/internal/handler/api"
	resdto "stayspot/internal/handler/dto/response"
	"stayspot/internal/usecase/commands"
	"stayspot/internal/usecase/queries"
	"stayspot/tests/common/builder"
	"stayspot/tests/common/httptest"
	"stayspot/tests/common/testutil"
	commandsmock "stayspot/tests/mock/commands"
	queriesmock "stayspot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	// Optional auth: sets identity when a token is present, never rejects
	optionalAuthMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleGuest)
		}
		c.Next()
	}

	// Setup routes
	s.router.POST("/spots/:id/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/spots/:id/bookings", optionalAuthMiddleware, s.handler.ListSpotBookings)
	s.router.GET("/bookings/current", authMiddleware, s.handler.GetCurrentBookings)
	s.router.PUT("/bookings/:id", authMiddleware, s.handler.UpdateBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/bookings"

	bld := builder.NewBookingBuilder().WithSpotID(spotID)
	reqBody := bld.BuildDatesRequestDTO()
	returnView := bld.BuildView()
	expectedResult := &commands.CreateBookingResult{BookingID: returnView.ID}

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), spotID, s.userID, gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(spotID, response.SpotID)
		s.Equal(reqBody.StartDate, response.StartDate)
		s.Equal(reqBody.EndDate, response.EndDate)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 404 Not Found for a malformed spot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/spots/not-a-uuid/bookings", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot couldn't be found")
	})

	s.Run("error: 400 Bad Request on body validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: startDate (required)", mutate: testutil.Field("startDate", nil)},
			{name: "missing field: endDate (required)", mutate: testutil.Field("endDate", nil)},
			{name: "startDate not a date", mutate: testutil.Field("startDate", "next tuesday")},
			{name: "endDate not a date", mutate: testutil.Field("endDate", "2025-13-40")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Bad Request")
			})
		}
	})

	s.Run("error: 400 with endDate sub-message for inverted range", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), spotID, s.userID, gomock.Any()).
			Return(nil, commands.ErrInvalidDateRange).Times(1)

		inverted := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("startDate", "2025-07-15"),
			testutil.Field("endDate", "2025-07-10"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, inverted, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Bad Request")
		httptest.AssertFieldError(s.T(), rec, "endDate", "endDate cannot be on or before startDate")
	})

	s.Run("error: 403 with both field messages on conflict", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), spotID, s.userID, gomock.Any()).
			Return(nil, commands.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Sorry, this spot is already booked for the specified dates")
		httptest.AssertFieldError(s.T(), rec, "startDate", "Start date conflicts with an existing booking")
		httptest.AssertFieldError(s.T(), rec, "endDate", "End date conflicts with an existing booking")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "spot not found",
				commandsError:  commands.ErrSpotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Spot couldn't be found",
			},
			{
				name:           "owner booking own spot",
				commandsError:  commands.ErrOwnerBooking,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), spotID, s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListSpotBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListSpotBookings() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/bookings"

	s.Run("success: owner sees bookings with booker identity", func() {
		items := []*queries.BookingWithUserItem{
			builder.NewBookingBuilder().WithSpotID(spotID).BuildOwnerItem(),
			builder.NewBookingBuilder().WithSpotID(spotID).BuildOwnerItem(),
		}
		s.mockQueries.EXPECT().ListBySpot(gomock.Any(), spotID, s.userID).
			Return(&queries.SpotBookingsView{IsOwner: true, OwnerItems: items}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		bookings, ok := response["Bookings"].([]any)
		s.True(ok)
		s.Len(bookings, 2)
		first, ok := bookings[0].(map[string]any)
		s.True(ok)
		s.Contains(first, "userEmail")
	})

	s.Run("success: anonymous requester sees occupied dates only", func() {
		items := []*queries.BookingPublicItem{
			builder.NewBookingBuilder().WithSpotID(spotID).BuildPublicItem(),
		}
		s.mockQueries.EXPECT().ListBySpot(gomock.Any(), spotID, uuid.Nil).
			Return(&queries.SpotBookingsView{IsOwner: false, PublicItems: items}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		bookings, ok := response["Bookings"].([]any)
		s.True(ok)
		s.Len(bookings, 1)
		first, ok := bookings[0].(map[string]any)
		s.True(ok)
		s.Contains(first, "startDate")
		s.NotContains(first, "userId")
		s.NotContains(first, "userEmail")
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.mockQueries.EXPECT().ListBySpot(gomock.Any(), spotID, s.userID).
			Return(nil, queries.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot couldn't be found")
	})

	s.Run("error: 404 Not Found for a malformed spot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/not-a-uuid/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot couldn't be found")
	})
}

// ================================================================================
// TestGetCurrentBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetCurrentBookings() {
	url := "/bookings/current"

	s.Run("success: returns bookings with spot summaries", func() {
		items := []*queries.CurrentBookingItem{
			builder.NewBookingBuilder().BuildCurrentItem(),
			builder.NewBookingBuilder().BuildCurrentItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		bookings, ok := response["Bookings"].([]any)
		s.True(ok)
		s.Len(bookings, 2)
		first, ok := bookings[0].(map[string]any)
		s.True(ok)
		spotSummary, ok := first["Spot"].(map[string]any)
		s.True(ok)
		s.Equal(items[0].Spot.Name, spotSummary["name"])
		s.Equal(*items[0].Spot.PreviewImage, spotSummary["previewImage"])
	})

	s.Run("success: empty list when the user has no bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

// ================================================================================
// TestUpdateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	bld := builder.NewBookingBuilder().WithDates(
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC),
	)
	reqBody := bld.BuildDatesRequestDTO()
	returnView := bld.BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with the updated booking", func() {
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), bookingID, s.userID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(reqBody.StartDate, response.StartDate)
		s.Equal(reqBody.EndDate, response.EndDate)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 404 Not Found for a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/not-a-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking couldn't be found")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking couldn't be found",
			},
			{
				name:           "booking not owned",
				commandsError:  commands.ErrBookingNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "past booking",
				commandsError:  commands.ErrPastBookingModified,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Past bookings can't be modified",
			},
			{
				name:           "conflict",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Sorry, this spot is already booked for the specified dates",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), bookingID, s.userID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with deletion message", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Successfully deleted", response["message"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 404 Not Found for a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking couldn't be found")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking couldn't be found",
			},
			{
				name:           "booking not owned",
				commandsError:  commands.ErrBookingNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "started booking",
				commandsError:  commands.ErrStartedBookingDeleted,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Bookings that have been started can't be deleted",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
