package catalog

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the guest-facing catalog routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/sightseeings", handler.List)
	r.GET("/sightseeings/:id", handler.Get)
}

// RegisterAdminRoutes registers catalog management routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	s := r.Group("/sightseeings")
	{
		s.POST("", handler.Create)
		s.PUT("/:id", handler.Update)
		s.DELETE("/:id", handler.Delete)
	}
}
