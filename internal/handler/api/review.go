package api

import (
	"net/http"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a property after a completed, approved stay. Reviews stay hidden until approved.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	reviewID, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), caller.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), reviewID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ReviewResponse{
		Message: "Review submitted successfully. It will be visible after approval.",
		Review:  view,
	})
}

// @Summary Moderate review
// @Description Approve a review or reject it, which deletes it permanently
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ModerateReviewRequest true "Moderation decision"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reviews/{id}/moderate [patch]
func (h *ReviewHandler) Moderate(c *gin.Context) {
	reviewID, ok := pathID(c, "Invalid review id")
	if !ok {
		return
	}
	var req reqdto.ModerateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.ModerateReview(c.Request.Context(), reviewID, *req.Approved)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if result.Deleted {
		c.JSON(http.StatusOK, resdto.ReviewResponse{Message: "Review rejected and deleted successfully"})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), reviewID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ReviewResponse{Message: "Review approved successfully", Review: view})
}

// @Summary List pending reviews
// @Description Reviews awaiting moderation, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/reviews [get]
func (h *ReviewHandler) ListPending(c *gin.Context) {
	items, err := h.q.ListPending(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items))
}
