//go:build unit

package api_test

import (
	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// asActor stands in for RequireAuth; a nil actor leaves the request anonymous.
func asActor(actor *shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			middleware.SetActor(c, *actor)
		}
		c.Next()
	}
}
