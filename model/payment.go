package model

import (
	"time"

	"github.com/nutrivitta/storefront/constant"
)

type Customer struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Document string `json:"document" validate:"required"`
}

type Address struct {
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required,len=2"`
	PostalCode string `json:"postal_code" validate:"required,cep"`
}

type CheckoutRequest struct {
	SessionID       string                 `json:"session_id" validate:"required"`
	PaymentMethod   constant.PaymentMethod `json:"payment_method" validate:"required,oneof=pix card"`
	Installments    int                    `json:"installments" validate:"omitempty,gte=1,lte=12"`
	CardToken       string                 `json:"card_token"`
	Customer        Customer               `json:"customer" validate:"required"`
	ShippingAddress Address                `json:"shipping_address" validate:"required"`
}

// PixPayment is ephemeral: displayed with a countdown, never persisted
// beyond the checkout session and never logged in full.
type PixPayment struct {
	QRCode        string    `json:"qr_code"`
	QRCodeURL     string    `json:"qr_code_url"`
	CopyPasteCode string    `json:"copy_paste_code"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (p *PixPayment) Expired(now time.Time) bool {
	return p == nil || !now.Before(p.ExpiresAt)
}

type ChargeResult struct {
	Status            constant.ChargeStatus `json:"status"`
	AuthorizationCode string                `json:"authorization_code,omitempty"`
	DeclineReason     string                `json:"decline_reason,omitempty"`
}

type CheckoutResponse struct {
	SessionID      string                 `json:"session_id"`
	GatewayOrderID string                 `json:"gateway_order_id"`
	PaymentMethod  constant.PaymentMethod `json:"payment_method"`
	TotalAmount    float64                `json:"total_amount"`
	Pix            *PixPayment            `json:"pix,omitempty"`
	Charge         *ChargeResult          `json:"charge,omitempty"`
}

// CheckoutSession is what survives between Submit and the webhook, stored in
// Redis keyed by session id. The PIX payload lives here so a retry within
// the expiry window reuses it instead of issuing a second charge.
type CheckoutSession struct {
	SessionID      string                 `json:"session_id"`
	GatewayOrderID string                 `json:"gateway_order_id"`
	PaymentMethod  constant.PaymentMethod `json:"payment_method"`
	TotalAmount    float64                `json:"total_amount"`
	Pix            *PixPayment            `json:"pix,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// Gateway wire contract.

type GatewayOrderItem struct {
	ProductID uint64  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type GatewayOrderRequest struct {
	SessionID     string                 `json:"session_id"`
	Items         []GatewayOrderItem     `json:"items"`
	Customer      Customer               `json:"customer"`
	PaymentMethod constant.PaymentMethod `json:"payment_method"`
	Installments  int                    `json:"installments,omitempty"`
	CardToken     string                 `json:"card_token,omitempty"`
}

type GatewayOrderResponse struct {
	OrderID string        `json:"order_id"`
	Status  string        `json:"status"`
	Pix     *PixPayment   `json:"pix,omitempty"`
	Charge  *ChargeResult `json:"charge_result,omitempty"`
}
