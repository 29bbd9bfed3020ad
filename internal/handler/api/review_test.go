//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/review"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/validation"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	"rental-marketplace/tests/common/httptest"
	"rental-marketplace/tests/common/testutil"
	commandsmock "rental-marketplace/tests/mock/commands"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.RegisterJSONFieldNames()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleTenant)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/admin/reviews", authMiddleware, s.handler.ListPending)
	s.router.PATCH("/admin/reviews/:id/moderate", authMiddleware, s.handler.Moderate)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	rb := builder.NewReviewBuilder()
	reqBody := rb.BuildCreateRequestDTO()
	returnView := rb.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), rb.BuildCommand(), s.userID).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Review submitted successfully. It will be visible after approval.", response.Message)
		s.Require().NotNil(response.Review)
		s.False(response.Review.IsApproved)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseReview{
			{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
			{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest, expectInBody: "Rating must be at least 1"},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest, expectInBody: "Rating must be at most 5"},
			{name: "text length OK (1000 chars)", mutate: testutil.Field("reviewText", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "text length invalid (1001 chars)", mutate: testutil.Field("reviewText", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest, expectInBody: "Review text must be at most 1000 characters"},
		}

		missing := []testCaseReview{
			{name: "missing field: propertyId (required)", mutate: testutil.Field("propertyId", nil), expectCode: http.StatusBadRequest, expectInBody: "Property id is required"},
			{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest, expectInBody: "Rating is required"},
			{name: "missing field: reviewText (optional)", mutate: testutil.Field("reviewText", nil), expectCode: http.StatusCreated},
		}

		malformed := []testCaseReview{
			{name: "propertyId not a uuid", mutate: testutil.Field("propertyId", "abc"), expectCode: http.StatusBadRequest, expectInBody: "Property id must be a valid id"},
			{name: "rating not a number", mutate: testutil.Field("rating", "five"), expectCode: http.StatusBadRequest, expectInBody: "Rating has an invalid type"},
		}

		for _, group := range [][]testCaseReview{bound, missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
							Return(returnView.ID, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
					}
				})
			}
		}
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no completed stay",
				commandsError:  review.ErrNotEligible,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "You can only review properties you have rented",
			},
			{
				name:           "already reviewed",
				commandsError:  review.ErrAlreadyReviewed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "You have already reviewed this property",
			},
			{
				name:           "property not found",
				commandsError:  property.ErrNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Property not found",
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
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestModerate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestModerate() {
	reviewID := uuid.New()
	url := "/admin/reviews/" + reviewID.String() + "/moderate"

	s.Run("success: approval returns the review", func() {
		view := builder.NewReviewBuilder().AsApproved().BuildView()
		view.ID = reviewID
		s.mockCommands.EXPECT().ModerateReview(gomock.Any(), reviewID, true).
			Return(&commands.ModerationResult{ReviewID: reviewID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"approved": true}, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Review approved successfully", response.Message)
		s.Require().NotNil(response.Review)
		s.True(response.Review.IsApproved)
	})

	s.Run("success: rejection deletes and returns only a message", func() {
		s.mockCommands.EXPECT().ModerateReview(gomock.Any(), reviewID, false).
			Return(&commands.ModerationResult{ReviewID: reviewID, Deleted: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"approved": false}, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Review rejected and deleted successfully", response.Message)
		s.Nil(response.Review)
	})

	s.Run("error: 400 when approved is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Approved is required")
	})

	s.Run("error: 400 for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/reviews/not-a-uuid/moderate", map[string]any{"approved": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid review id")
	})

	s.Run("error: 404 for unknown review", func() {
		s.mockCommands.EXPECT().ModerateReview(gomock.Any(), reviewID, true).Return(nil, review.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"approved": true}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

// ================================================================================
// TestListPending
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListPending() {
	s.Run("success: returns pending reviews", func() {
		items := []*queries.ReviewView{builder.NewReviewBuilder().BuildView(), builder.NewReviewBuilder().BuildView()}
		s.mockQueries.EXPECT().ListPending(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reviews", nil, "bearer-token")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 2)
	})

	s.Run("success: empty list renders as []", func() {
		s.mockQueries.EXPECT().ListPending(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reviews", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"reviews":[]}`, rec.Body.String())
	})
}
