package wallet

import "github.com/gin-gonic/gin"

// RegisterRoutes registers agent-facing wallet routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	w := r.Group("/wallet")
	{
		w.GET("", handler.GetMyWallet)
		w.GET("/transactions", handler.ListMyTransactions)
	}
}

// RegisterAdminRoutes registers wallet accounting routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/wallets/:id/topup", handler.TopUpWallet)
}
