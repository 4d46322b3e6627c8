package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes registers agent-facing booking routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	b := r.Group("/bookings")
	{
		b.POST("", handler.Create)
		b.GET("/mine", handler.ListMine)
		b.GET("/:id", handler.Get)
	}
}

// RegisterPrivilegedRoutes registers routes for admin/operations: claim
// recording, cross-user listing, status and refund transitions, deletion.
func RegisterPrivilegedRoutes(r *gin.RouterGroup, handler *Handler) {
	b := r.Group("/bookings")
	{
		b.GET("", handler.ListAll)
		b.POST("/:id/claims", handler.AppendClaim)
		b.PUT("/:id/status", handler.UpdateStatus)
		b.POST("/:id/refund", handler.MarkRefunded)
		b.DELETE("/:id", handler.Delete)
	}
}
