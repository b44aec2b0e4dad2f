package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/procure/backend/internal/application/identity"
)

// ProfileHandler handles access profile endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *identityapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create godoc
// @Summary      Create an access profile
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateProfileRequest true "Profile"
// @Success      201 {object} dto.Response{data=identityapp.ProfileResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var req identityapp.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, profile)
}

// GetByID godoc
// @Summary      Get a profile by ID
// @Tags         identity
// @Produce      json
// @Param        id path string true "Profile ID" format(uuid)
// @Success      200 {object} dto.Response{data=identityapp.ProfileResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/profiles/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// List godoc
// @Summary      List profiles
// @Tags         identity
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]identityapp.ProfileResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /identity/profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	var filter identityapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	profiles, total, err := h.profileService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, profiles, total, filter.Page, filter.PageSize)
}
