package model

import "time"

type ReservationLine struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// ReserveResult reports the outcome of a single line. Lines succeed or fail
// independently; Reason is set only when Reserved is false.
type ReserveResult struct {
	ProductID uint64 `json:"product_id"`
	Reserved  bool   `json:"reserved"`
	Reason    string `json:"reason,omitempty"`
}

type ReserveRequest struct {
	SessionID string
	ProductID uint64
	Quantity  int
	ExpiresAt time.Time
}

type Reservation struct {
	ID        int64     `db:"id"`
	SessionID string    `db:"session_id"`
	ProductID uint64    `db:"product_id"`
	Quantity  int64     `db:"quantity"`
	ExpiresAt time.Time `db:"expires_at"`
}

type CleanupResponse struct {
	ReleasedCount int64 `json:"released_count"`
}
