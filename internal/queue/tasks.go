package queue

import (
	"encoding/json"

	"github.com/mocnhien/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmEmail is the order confirmation email task.
	TaskOrderConfirmEmail = constants.TaskOrderConfirmEmail
)

// OrderConfirmEmailPayload is the confirmation email task payload.
type OrderConfirmEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderConfirmEmailTask creates an order confirmation email task.
func NewOrderConfirmEmailTask(payload OrderConfirmEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmEmail, body), nil
}
