package service

import (
	"strings"
	"time"

	"github.com/mocnhien/storefront/internal/constants"
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/repository"
)

// OrderService handles order lookups and lifecycle transitions.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusConfirmed: true,
		constants.OrderStatusCanceled:  true,
	},
	constants.OrderStatusConfirmed: {
		constants.OrderStatusShipping: true,
	},
	constants.OrderStatusShipping: {
		constants.OrderStatusDelivered: true,
	},
	constants.OrderStatusDelivered: {
		constants.OrderStatusCompleted: true,
	},
}

// CanTransition reports whether an order may move between two statuses.
func CanTransition(from, to string) bool {
	nexts, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

// GuestLookup fetches an order by number plus the contact details used
// at checkout.
func (s *OrderService) GuestLookup(orderNo, email, phone string) (*models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if orderNo == "" || email == "" || phone == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndContact(orderNo, email, phone)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetForUser fetches an order owned by a user.
func (s *OrderService) GetForUser(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(strings.TrimSpace(orderNo), userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForUser lists a user's orders.
func (s *OrderService) ListForUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.TrimSpace(status),
	})
}

// Cancel cancels a pending order on the customer's behalf.
func (s *OrderService) Cancel(order *models.Order) (*models.Order, error) {
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransition(order.Status, constants.OrderStatusCanceled) {
		return nil, ErrOrderNotCancelable
	}
	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	}); err != nil {
		return nil, err
	}
	order.Status = constants.OrderStatusCanceled
	order.CanceledAt = &now
	return order, nil
}

// UpdateStatus moves an order along the lifecycle, enforcing the
// transition table.
func (s *OrderService) UpdateStatus(orderID uint, target string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransition(order.Status, target) {
		return nil, ErrInvalidStatusTransition
	}
	updates := map[string]interface{}{}
	if target == constants.OrderStatusCanceled {
		updates["canceled_at"] = time.Now()
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, err
	}
	order.Status = target
	return order, nil
}
