package handlers

import (
	"github.com/gin-gonic/gin"

	"campusdesk/internal/shared/constants"
)

// actorID returns the authenticated caller's ID stored by the auth
// middleware. A zero value means the request never authenticated.
func actorID(c *gin.Context) uint {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}
