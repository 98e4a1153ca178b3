package inventory_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/nutrivitta/storefront/model"
	inventoryrepo "github.com/nutrivitta/storefront/repository/inventory"
	cerr "github.com/nutrivitta/storefront/utils/errors"
)

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func TestInventoryRepository_ReserveStockTx(t *testing.T) {
	db, mock := newTestDB(t)
	repo := inventoryrepo.NewInventoryRepository(db)

	expiresAt := time.Now().Add(30 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE product_stock SET reserved = reserved + ? WHERE product_id = ? AND stock - reserved >= ?")).
		WithArgs(2, uint64(1), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO stock_reservation (session_id, product_id, quantity, expires_at) VALUES (?, ?, ?, ?)")).
		WithArgs("sess-1", uint64(1), 2, expiresAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tx, err := db.Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}

	err = repo.ReserveStockTx(context.Background(), tx, &model.ReserveRequest{
		SessionID: "sess-1",
		ProductID: 1,
		Quantity:  2,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		t.Fatalf("ReserveStockTx() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInventoryRepository_ReserveStockTxConflict(t *testing.T) {
	db, mock := newTestDB(t)
	repo := inventoryrepo.NewInventoryRepository(db)

	mock.ExpectBegin()
	// zero rows affected: someone else took the remaining units
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE product_stock SET reserved = reserved + ? WHERE product_id = ? AND stock - reserved >= ?")).
		WithArgs(5, uint64(1), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}

	err = repo.ReserveStockTx(context.Background(), tx, &model.ReserveRequest{
		SessionID: "sess-1",
		ProductID: 1,
		Quantity:  5,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("ReserveStockTx() error = %v, want CustomError", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInventoryRepository_ReleaseExpiredTx(t *testing.T) {
	db, mock := newTestDB(t)
	repo := inventoryrepo.NewInventoryRepository(db)

	now := time.Now()
	expired := now.Add(-time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, session_id, product_id, quantity, expires_at FROM stock_reservation WHERE expires_at <= ? FOR UPDATE")).
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "product_id", "quantity", "expires_at"}).
			AddRow(11, "sess-1", 1, 2, expired).
			AddRow(12, "sess-2", 3, 1, expired))

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE product_stock SET reserved = reserved - ? WHERE product_id = ?")).
		WithArgs(2, uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stock_reservation WHERE id = ?")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE product_stock SET reserved = reserved - ? WHERE product_id = ?")).
		WithArgs(1, uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stock_reservation WHERE id = ?")).
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}

	count, err := repo.ReleaseExpiredTx(context.Background(), tx, now)
	if err != nil {
		t.Fatalf("ReleaseExpiredTx() error = %v", err)
	}
	if count != 2 {
		t.Fatalf("ReleaseExpiredTx() = %d, want 2", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
