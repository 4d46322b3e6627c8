package guestbooking

import "github.com/gin-gonic/gin"

// RegisterRoutes registers guest-facing sightseeing booking routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	b := r.Group("/sightseeing-bookings")
	{
		b.POST("", handler.Create)
		b.GET("/mine", handler.ListMine)
		b.GET("/:id", handler.Get)
		b.GET("/:id/voucher", handler.Voucher)
		b.DELETE("/:id", handler.Delete)
	}
}

// RegisterBackOfficeRoutes registers the cross-user listing for admin,
// operations and sales.
func RegisterBackOfficeRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/sightseeing-bookings", handler.ListAll)
}

// RegisterOpsRoutes registers status transitions for admin and operations.
func RegisterOpsRoutes(r *gin.RouterGroup, handler *Handler) {
	r.PUT("/sightseeing-bookings/:id/status", handler.UpdateStatus)
}
