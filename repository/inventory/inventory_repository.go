package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	"github.com/nutrivitta/storefront/utils/errors"
)

type InventoryRepository interface {
	GetAvailableStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error)
	ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error
	GetReservationsBySessionTx(ctx context.Context, tx *sqlx.Tx, sessionID string) ([]model.Reservation, error)
	ConvertReservationsTx(ctx context.Context, tx *sqlx.Tx, sessionID string) error
	ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, sessionID string) error
	ReleaseExpiredTx(ctx context.Context, tx *sqlx.Tx, now time.Time) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewInventoryRepository(conn *sqlx.DB) InventoryRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetAvailableStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(stock - reserved, 0) as total FROM product_stock WHERE product_id = ?"
	if err := tx.GetContext(ctx, &total, q, productID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// ReserveStockTx takes the hold with a guarded compare-and-swap UPDATE. Zero
// rows affected means another shopper took the remaining units between the
// caller's availability read and this statement.
func (r *SQL) ReserveStockTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE product_stock SET reserved = reserved + ? WHERE product_id = ? AND stock - reserved >= ?",
		req.Quantity, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrReservationConflict)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO stock_reservation (session_id, product_id, quantity, expires_at) VALUES (?, ?, ?, ?)",
		req.SessionID, req.ProductID, req.Quantity, req.ExpiresAt)
	return err
}

func (r *SQL) GetReservationsBySessionTx(ctx context.Context, tx *sqlx.Tx, sessionID string) ([]model.Reservation, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT id, session_id, product_id, quantity, expires_at FROM stock_reservation WHERE session_id = ? FOR UPDATE",
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.Reservation, 0)
	for rows.Next() {
		var rr model.Reservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, rows.Err()
}

// ConvertReservationsTx turns the session's holds into a definitive stock
// decrement, used when the webhook confirms payment.
func (r *SQL) ConvertReservationsTx(ctx context.Context, tx *sqlx.Tx, sessionID string) error {
	reservations, err := r.GetReservationsBySessionTx(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	for _, rr := range reservations {
		if _, err := tx.ExecContext(ctx,
			"UPDATE product_stock SET stock = stock - ?, reserved = reserved - ? WHERE product_id = ?",
			rr.Quantity, rr.Quantity, rr.ProductID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE id = ?", rr.ID); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseReservationsTx gives the session's holds back without touching
// stock, used when checkout fails after a partial reserve.
func (r *SQL) ReleaseReservationsTx(ctx context.Context, tx *sqlx.Tx, sessionID string) error {
	reservations, err := r.GetReservationsBySessionTx(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	for _, rr := range reservations {
		if _, err := tx.ExecContext(ctx,
			"UPDATE product_stock SET reserved = reserved - ? WHERE product_id = ?",
			rr.Quantity, rr.ProductID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE id = ?", rr.ID); err != nil {
			return err
		}
	}
	return nil
}

// ReleaseExpiredTx releases every reservation whose window has passed and
// returns how many were released. Rows still inside their window are never
// touched, so re-running against an empty expired set is a no-op.
func (r *SQL) ReleaseExpiredTx(ctx context.Context, tx *sqlx.Tx, now time.Time) (int64, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT id, session_id, product_id, quantity, expires_at FROM stock_reservation WHERE expires_at <= ? FOR UPDATE",
		now)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	expired := make([]model.Reservation, 0)
	for rows.Next() {
		var rr model.Reservation
		if err := rows.StructScan(&rr); err != nil {
			return 0, err
		}
		expired = append(expired, rr)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, rr := range expired {
		if _, err := tx.ExecContext(ctx,
			"UPDATE product_stock SET reserved = reserved - ? WHERE product_id = ?",
			rr.Quantity, rr.ProductID); err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_reservation WHERE id = ?", rr.ID); err != nil {
			return 0, err
		}
	}
	return int64(len(expired)), nil
}
