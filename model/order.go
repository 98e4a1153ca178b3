package model

import (
	"time"

	"github.com/nutrivitta/storefront/constant"
)

// OrderEntity is the record of what was actually paid for. It is created by
// the payment webhook; the storefront only ever reads it.
type OrderEntity struct {
	ID               uint64               `db:"id" json:"id"`
	GatewaySessionID string               `db:"gateway_session_id" json:"gateway_session_id"`
	CustomerEmail    string               `db:"customer_email" json:"customer_email"`
	TotalAmount      float64              `db:"total_amount" json:"total_amount"`
	Status           constant.OrderStatus `db:"status" json:"status"`
	ShippingAddress  string               `db:"shipping_address" json:"shipping_address"`
	CreatedAt        time.Time            `db:"created_at" json:"created_at"`
}

type InsertOrderTxItem struct {
	GatewaySessionID string
	CustomerEmail    string
	TotalAmount      float64
	Status           constant.OrderStatus
	ShippingAddress  string
}

// OrderExistsResult is the read the confirmation poller reconciles against.
type OrderExistsResult struct {
	Exists    bool                 `json:"exists"`
	OrderID   uint64               `json:"order_id,omitempty"`
	Status    constant.OrderStatus `json:"status,omitempty"`
	CreatedAt *time.Time           `json:"created_at,omitempty"`
}

// PaymentWebhookEvent is the gateway's server-to-server notification.
// EventID makes redelivery detectable; GatewaySessionID ties the payment
// back to the checkout session.
type PaymentWebhookEvent struct {
	EventID          string  `json:"event_id" validate:"required"`
	EventType        string  `json:"event_type" validate:"required"`
	GatewaySessionID string  `json:"gateway_session_id" validate:"required"`
	CustomerEmail    string  `json:"customer_email" validate:"required,email"`
	TotalAmount      float64 `json:"total_amount" validate:"gte=0"`
	ShippingAddress  string  `json:"shipping_address"`
	Status           string  `json:"status" validate:"required"`
}
