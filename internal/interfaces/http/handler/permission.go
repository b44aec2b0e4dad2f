package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/procure/backend/internal/application/identity"
)

// PermissionHandler handles role assignment, permission grants and
// authorization checks
type PermissionHandler struct {
	BaseHandler
	permissionService *identityapp.PermissionService
}

// NewPermissionHandler creates a new PermissionHandler
func NewPermissionHandler(permissionService *identityapp.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

// AuthorizeResponse is the result of an authorization check
type AuthorizeResponse struct {
	Authorized bool   `json:"authorized"`
	UserID     string `json:"user_id"`
}

// Grant godoc
// @Summary      Grant a role a permission triple
// @Description  Allows holders of the role to act under the exact profile,
// @Description  department and classifier combination
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        request body identityapp.GrantPermissionRequest true "Permission"
// @Success      201 {object} dto.Response{data=identityapp.PermissionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/permissions [post]
func (h *PermissionHandler) Grant(c *gin.Context) {
	var req identityapp.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permission, err := h.permissionService.Grant(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, permission)
}

// List godoc
// @Summary      List granted permissions
// @Tags         identity
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]identityapp.PermissionResponse}
// @Security     BearerAuth
// @Router       /identity/permissions [get]
func (h *PermissionHandler) List(c *gin.Context) {
	var filter identityapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permissions, err := h.permissionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, permissions)
}

// AssignRole godoc
// @Summary      Assign a role to a user
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        request body identityapp.AssignRoleRequest true "Role assignment"
// @Success      201 {object} dto.Response{data=identityapp.UserRoleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/user-roles [post]
func (h *PermissionHandler) AssignRole(c *gin.Context) {
	var req identityapp.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	role, err := h.permissionService.AssignRole(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, role)
}

// ListUserRoles godoc
// @Summary      List the roles assigned to a user
// @Tags         identity
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} dto.Response{data=[]identityapp.UserRoleResponse}
// @Security     BearerAuth
// @Router       /identity/users/{user_id}/roles [get]
func (h *PermissionHandler) ListUserRoles(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		h.BadRequest(c, "User ID is required")
		return
	}

	roles, err := h.permissionService.ListUserRoles(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, roles)
}

// Authorize godoc
// @Summary      Check a permission triple for the authenticated user
// @Description  Succeeds when one of the user's roles holds a grant for the
// @Description  exact profile, department and classifier combination
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        request body identityapp.AuthorizeRequest true "Triple to check"
// @Success      200 {object} dto.Response{data=AuthorizeResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/authorize [post]
func (h *PermissionHandler) Authorize(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.permissionService.Authorize(c.Request.Context(), userID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, AuthorizeResponse{Authorized: true, UserID: userID})
}

// ProtectedResponse is returned by the guarded demo endpoint
type ProtectedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Protected godoc
// @Summary      Demo endpoint behind the permission guard
// @Description  Reachable only when the guard grants the triple passed as
// @Description  query parameters
// @Tags         identity
// @Produce      json
// @Param        profile_id query string true "Profile ID"
// @Param        department_id query string true "Department ID"
// @Param        classifier_id query string true "Classifier ID"
// @Success      200 {object} dto.Response{data=ProtectedResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/protected [get]
func (h *PermissionHandler) Protected(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, ProtectedResponse{Message: "Access granted", UserID: userID})
}
