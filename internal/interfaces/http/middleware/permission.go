package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityapp "github.com/procure/backend/internal/application/identity"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/interfaces/http/dto"
)

// Authorizer checks whether a user may act under a permission triple.
// Satisfied by identity's PermissionService.
type Authorizer interface {
	Authorize(ctx context.Context, userID string, req identityapp.AuthorizeRequest) error
}

// PermissionGuard protects a route with an authorization check. The triple
// is read from the profile_id, department_id and classifier_id query
// parameters and checked against the authenticated user's roles; requests
// that fail the check are rejected with 403 before the handler runs.
func PermissionGuard(authorizer Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetJWTUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		profileID, err := uuid.Parse(c.Query("profile_id"))
		if err != nil {
			abortGuardBadRequest(c, "profile_id must be a valid UUID")
			return
		}
		departmentID, err := uuid.Parse(c.Query("department_id"))
		if err != nil {
			abortGuardBadRequest(c, "department_id must be a valid UUID")
			return
		}
		classifierID, err := uuid.Parse(c.Query("classifier_id"))
		if err != nil {
			abortGuardBadRequest(c, "classifier_id must be a valid UUID")
			return
		}

		err = authorizer.Authorize(c.Request.Context(), userID, identityapp.AuthorizeRequest{
			ProfileID:    profileID,
			DepartmentID: departmentID,
			ClassifierID: classifierID,
		})
		if err != nil {
			if errors.Is(err, shared.ErrForbidden) {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrCodeForbidden, "You do not have permission for this action"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "Authorization check failed"))
			return
		}

		c.Next()
	}
}

func abortGuardBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message))
}
