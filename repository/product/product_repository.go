package product

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nutrivitta/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, p.name, p.price, p.is_kit, COALESCE(ps.stock - ps.reserved, 0) as available_stock
FROM product p
LEFT JOIN product_stock ps ON ps.product_id = p.id`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	getProductDetail = `SELECT p.id, p.name, p.description, p.price, p.is_kit, COALESCE(ps.stock - ps.reserved, 0) as available_stock
FROM product p
LEFT JOIN product_stock ps ON ps.product_id = p.id
WHERE p.id = ?`

	getKitComponents = `SELECT kp.component_id as product_id, kp.quantity
FROM kit_product kp
WHERE kp.kit_id = ?
ORDER BY kp.component_id`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	// get total count
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w", err)
	}

	// Kits decompose into components so the storefront can show what a
	// bundle actually reserves
	if detail.IsKit {
		components := make([]model.KitComponent, 0)
		if err := s.conn.SelectContext(ctx, &components, getKitComponents, id); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		detail.KitProducts = components
	}

	return &detail, nil
}
