package controllers

import (
	"github.com/leonardo-a/daily-diet-api/models"

	"github.com/gin-gonic/gin"
)

// --- helpers ---

func userFromCtx(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
