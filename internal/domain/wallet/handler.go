package wallet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmarket/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type amountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (h *Handler) GetMyWallet(c *gin.Context) {
	wallet, err := h.service.GetOrCreateWallet(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get wallet")
		return
	}

	response.Success(c, http.StatusOK, wallet)
}

func (h *Handler) ListMyTransactions(c *gin.Context) {
	txns, err := h.service.ListTransactions(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	response.SuccessWithCount(c, http.StatusOK, txns, len(txns))
}

// TopUpWallet credits an agent's wallet. Admin only: agent balances change
// through accounting, not self-service.
func (h *Handler) TopUpWallet(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, txn, err := h.service.Add(c.Request.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to add funds")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet, "transaction": txn})
}
