package api

import (
	"net/http"

	reqdto "rental-marketplace/internal/handler/dto/request"
	resdto "rental-marketplace/internal/handler/dto/response"
	"rental-marketplace/internal/handler/httperr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	cmds commands.PropertyCommands
	q    queries.PropertyQueries
}

func NewPropertyHandler(cmds commands.PropertyCommands, q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q}
}

// @Summary Search properties
// @Description Available properties matching the filters, newest first, with keyset pagination
// @Tags properties
// @Produce json
// @Param city query string false "Case-insensitive substring of the city"
// @Param minRent query number false "Minimum monthly rent (inclusive)"
// @Param maxRent query number false "Maximum monthly rent (inclusive)"
// @Param bedrooms query int false "Exact number of bedrooms"
// @Param bathrooms query int false "Exact number of bathrooms"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.PropertySearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) Search(c *gin.Context) {
	var query reqdto.SearchPropertiesQuery
	if !bindQuery(c, &query) {
		return
	}

	cursor, limit := query.Page()
	result, err := h.q.Search(c.Request.Context(), query.Filters(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Get property
// @Description Property detail with images, landlord, approved reviews and whether the caller may review it
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	propertyID, ok := pathID(c, "Invalid property id")
	if !ok {
		return
	}

	detail, err := h.q.GetByID(c.Request.Context(), propertyID, viewer(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PropertyResponse{Property: detail})
}

// @Summary Create property
// @Description List a new property under the caller
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Create property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	propertyID, err := h.cmds.CreateProperty(c.Request.Context(), req.ToDomain(), caller)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithProperty(c, http.StatusCreated, propertyID, "Property created successfully")
}

// @Summary Delete property
// @Description The owning landlord or an admin may delete a property
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	propertyID, ok := pathID(c, "Invalid property id")
	if !ok {
		return
	}
	caller, ok := actor(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteProperty(c.Request.Context(), propertyID, caller); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Property deleted successfully"})
}

// @Summary Toggle availability
// @Description The owning landlord or an admin may list or unlist a property. Existing bookings are not changed.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.SetAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/availability [patch]
func (h *PropertyHandler) SetAvailability(c *gin.Context) {
	propertyID, ok := pathID(c, "Invalid property id")
	if !ok {
		return
	}
	caller, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.SetAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.SetAvailability(c.Request.Context(), propertyID, *req.IsAvailable, caller); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithProperty(c, http.StatusOK, propertyID, "Availability updated successfully")
}

// @Summary List my properties
// @Description Landlord's own properties with booking and review counts
// @Tags landlord
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LandlordPropertiesResponse
// @Failure 401 {object} httperr.Response
// @Router /landlord/properties [get]
func (h *PropertyHandler) ListMine(c *gin.Context) {
	caller, ok := actor(c)
	if !ok {
		return
	}

	items, err := h.q.ListForLandlord(c.Request.Context(), caller.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if items == nil {
		items = []*queries.LandlordPropertyItem{}
	}
	c.JSON(http.StatusOK, resdto.LandlordPropertiesResponse{Properties: items})
}

// @Summary List all properties
// @Description Admin view of every property with landlord and counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminPropertiesResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/properties [get]
func (h *PropertyHandler) ListAll(c *gin.Context) {
	items, err := h.q.ListForAdmin(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if items == nil {
		items = []*queries.AdminPropertyItem{}
	}
	c.JSON(http.StatusOK, resdto.AdminPropertiesResponse{Properties: items})
}

func (h *PropertyHandler) respondWithProperty(c *gin.Context, status int, propertyID uuid.UUID, msg string) {
	detail, err := h.q.GetByID(c.Request.Context(), propertyID, viewer(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.PropertyResponse{Message: msg, Property: detail})
}
