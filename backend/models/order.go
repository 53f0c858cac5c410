package models

import "time"

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderFailed    = "failed"
	OrderRefunded  = "refunded"
)

// Order records a purchase attempt against the (simulated) payment
// gateway. Completing an order creates the matching active enrollment in
// the same unit of work — the only cross-entity side effect in the system.
type Order struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         string    `gorm:"not null" json:"userId"`
	BatchID        uint      `gorm:"not null" json:"batchId"`
	Batch          *Batch    `json:"batch,omitempty"`
	Amount         string    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status         string    `gorm:"default:pending" json:"status"` // pending, completed, failed, refunded
	GatewayOrderID string    `json:"gatewayOrderId"`
	PaymentID      string    `json:"paymentId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateOrderInput struct {
	BatchID uint   `json:"batchId" validate:"required"`
	Amount  string `json:"amount" validate:"required"`
}

type UpdateOrderStatusInput struct {
	Status    string `json:"status" validate:"required,oneof=pending completed failed refunded"`
	PaymentID string `json:"paymentId"`
}
