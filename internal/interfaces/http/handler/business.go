package handler

import (
	profileapp "github.com/billfold/backend/internal/application/profile"
	"github.com/gin-gonic/gin"
)

// BusinessProfileHandler handles business-profile API endpoints
type BusinessProfileHandler struct {
	BaseHandler
	service *profileapp.BusinessProfileService
}

// NewBusinessProfileHandler creates a new BusinessProfileHandler
func NewBusinessProfileHandler(service *profileapp.BusinessProfileService) *BusinessProfileHandler {
	return &BusinessProfileHandler{service: service}
}

// RegisterRoutes registers business-profile routes
func (h *BusinessProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/business-profiles")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// Create creates a new business profile
func (h *BusinessProfileHandler) Create(c *gin.Context) {
	var req profileapp.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns business profiles
func (h *BusinessProfileHandler) List(c *gin.Context) {
	var req profileapp.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filter := req.ToFilter()
	h.SuccessWithMeta(c, resp.Items, resp.Total, filter.Page, filter.PageSize)
}

// Get returns a single business profile
func (h *BusinessProfileHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid profile ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update replaces a business profile's details
func (h *BusinessProfileHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid profile ID")
		return
	}

	var req profileapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a business profile. Invoices that referenced it keep
// their frozen snapshots.
func (h *BusinessProfileHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid profile ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
