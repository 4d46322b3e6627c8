package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers unauthenticated auth routes
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
}

// RegisterProtectedRoutes registers routes that need a valid token
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/auth/me", handler.Me)
}

// RegisterAdminRoutes registers admin user-management routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.PATCH("/:id/role", handler.UpdateRole)
	}
}
