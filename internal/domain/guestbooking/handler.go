package guestbooking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmarket/internal/domain/booking"
	"tripmarket/internal/pkg/response"
	"tripmarket/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaxMismatch):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrSightseeingNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, booking.ErrReferenceConflict):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to fetch booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	out, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	response.SuccessWithCount(c, http.StatusOK, out, len(out))
}

func (h *Handler) ListAll(c *gin.Context) {
	out, err := h.service.ListAll(c.Request.Context(), c.GetString("role"), c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}
	response.SuccessWithCount(c, http.StatusOK, out, len(out))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Voucher(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pdf, err := h.service.Voucher(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, ErrVoucherNotConfirmed):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to generate voucher")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=voucher-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
