package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	"github.com/nutrivitta/storefront/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	GetByGatewaySessionTx(ctx context.Context, tx *sqlx.Tx, gatewaySessionID string) (*model.OrderEntity, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.OrderStatus) error
	GetByGatewaySession(ctx context.Context, gatewaySessionID string) (*model.OrderEntity, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const orderColumns = "id, gateway_session_id, customer_email, total_amount, status, shipping_address, created_at"

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO `order` (gateway_session_id, customer_email, total_amount, status, shipping_address, created_at) VALUES (?, ?, ?, ?, ?, NOW())",
		req.GatewaySessionID, req.CustomerEmail, req.TotalAmount, req.Status, req.ShippingAddress)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByGatewaySessionTx(ctx context.Context, tx *sqlx.Tx, gatewaySessionID string) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	row := tx.QueryRowxContext(ctx,
		"SELECT "+orderColumns+" FROM `order` WHERE gateway_session_id = ? FOR UPDATE", gatewaySessionID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateOrderStatusTx moves an order forward. The WHERE clause repeats the
// expected current status so a concurrent or replayed transition affects
// zero rows instead of regressing the order.
func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, from, to constant.OrderStatus) error {
	res, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ? AND status = ?", to, orderID, from)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}
	return nil
}

func (r *SQL) GetByGatewaySession(ctx context.Context, gatewaySessionID string) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	row := r.conn.QueryRowxContext(ctx,
		"SELECT "+orderColumns+" FROM `order` WHERE gateway_session_id = ?", gatewaySessionID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
