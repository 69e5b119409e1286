package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mocnhien/storefront/internal/http/response"
	"github.com/mocnhien/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// LookupGuestOrder fetches an order by number plus the checkout
// contact details. Wrong details look the same as a missing order.
func (h *Handler) LookupGuestOrder(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Query("order_no"))
	email := strings.TrimSpace(c.Query("email"))
	phone := strings.TrimSpace(c.Query("phone"))
	if orderNo == "" || email == "" || phone == "" {
		respondError(c, response.CodeBadRequest, msgBadRequest, nil)
		return
	}

	order, err := h.OrderService.GuestLookup(orderNo, email, phone)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, msgOrderNotFound, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, order)
}

// CancelGuestOrderRequest cancels a guest order via contact details.
type CancelGuestOrderRequest struct {
	OrderNo string `json:"order_no" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

// CancelGuestOrder cancels a pending guest order.
func (h *Handler) CancelGuestOrder(c *gin.Context) {
	var req CancelGuestOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}

	order, err := h.OrderService.GuestLookup(req.OrderNo, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, msgOrderNotFound, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}

	canceled, err := h.OrderService.Cancel(order)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotCancelable) {
			respondError(c, response.CodeBadRequest, msgOrderNotCancelable, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, canceled)
}

// ListUserOrders lists the authenticated user's orders.
func (h *Handler) ListUserOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	status := strings.TrimSpace(c.Query("status"))

	orders, total, err := h.OrderService.ListForUser(userID, status, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetUserOrder fetches one of the authenticated user's orders.
func (h *Handler) GetUserOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetForUser(c.Param("order_no"), userID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, msgOrderNotFound, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, order)
}

// CancelUserOrder cancels a pending order owned by the user.
func (h *Handler) CancelUserOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetForUser(c.Param("order_no"), userID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, msgOrderNotFound, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}

	canceled, err := h.OrderService.Cancel(order)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotCancelable) {
			respondError(c, response.CodeBadRequest, msgOrderNotCancelable, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	response.Success(c, canceled)
}
