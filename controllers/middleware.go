package controllers

import (
	"errors"
	"net/http"

	"migranthealth/models"
	"migranthealth/store"
	"migranthealth/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a dashboard group to one role, mirroring the session
// gate: no session is unauthorized, an unapproved doctor is held at the
// approval gate, a role mismatch is forbidden.
func RequireRole(s *store.Store, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.CurrentUser()
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.FailedResponse(errors.New(utils.NOT_LOGGED_IN)))
			return
		}
		if user.Role == models.RoleDoctor && !user.IsApproved() {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.FailedResponse(errors.New(utils.PENDING_APPROVAL)))
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.FailedResponse(errors.New(utils.FORBIDDEN_FOR_ROLE)))
			return
		}
		c.Set("user", *user)
		c.Next()
	}
}

func userFromContext(c *gin.Context) models.User {
	v, _ := c.Get("user")
	user, _ := v.(models.User)
	return user
}
