package inventory

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	inventoryrepo "github.com/nutrivitta/storefront/repository/inventory"
	txrepo "github.com/nutrivitta/storefront/repository/tx"
	"github.com/nutrivitta/storefront/thirdparty/rabbitmq"
	"github.com/nutrivitta/storefront/utils/errors"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	Reserve(ctx context.Context, sessionID string, lines []model.ReservationLine) ([]model.ReserveResult, error)
	ReleaseSession(ctx context.Context, sessionID string) error
	CleanupExpired(ctx context.Context) (*model.CleanupResponse, error)
}

type inventoryAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	inventoryRepo inventoryrepo.InventoryRepository
	publisher     *rabbitmq.Publisher
}

func NewInventoryApp(config *config.Config, txRepo txrepo.TxRepository, inventoryRepo inventoryrepo.InventoryRepository, publisher *rabbitmq.Publisher) InventoryApp {
	return &inventoryAppImpl{config: config, txRepo: txRepo, inventoryRepo: inventoryRepo, publisher: publisher}
}

// Reserve attempts a time-boxed hold per line. Lines succeed or fail
// independently; there is no all-or-nothing transaction across them, so each
// attempt runs in its own short transaction and a failed line never undoes
// an earlier one. The caller decides whether a partial result blocks
// checkout.
func (s *inventoryAppImpl) Reserve(ctx context.Context, sessionID string, lines []model.ReservationLine) ([]model.ReserveResult, error) {
	if sessionID == "" || len(lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	expiresAt := time.Now().Add(s.config.Reservation.Window)
	results := make([]model.ReserveResult, 0, len(lines))
	reservedAny := false

	for _, line := range lines {
		result, err := s.reserveLine(ctx, sessionID, line, expiresAt)
		if err != nil {
			return nil, err
		}
		if result.Reserved {
			reservedAny = true
		}
		results = append(results, *result)
	}

	if reservedAny && s.publisher != nil {
		msg := rabbitmq.ReservationSweepMessage{
			SessionID: sessionID,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishReservationSweep(msg); err != nil {
			// The cron trigger covers a lost sweep message
			logger.Error("[Reserve] publish reservation sweep", zap.String("error", err.Error()))
		}
	}

	return results, nil
}

func (s *inventoryAppImpl) reserveLine(ctx context.Context, sessionID string, line model.ReservationLine, expiresAt time.Time) (*model.ReserveResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	available, err := s.inventoryRepo.GetAvailableStockTx(ctx, tx, line.ProductID)
	if err != nil {
		logger.Error("[Reserve] get available stock", zap.String("error", err.Error()), zap.Uint64("product_id", line.ProductID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if available < int64(line.Quantity) {
		logger.Info("[Reserve] out of stock",
			zap.Uint64("product_id", line.ProductID), zap.Int("need", line.Quantity), zap.Int64("available", available))
		return &model.ReserveResult{ProductID: line.ProductID, Reason: constant.ReserveReasonOutOfStock}, nil
	}

	req := &model.ReserveRequest{
		SessionID: sessionID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		ExpiresAt: expiresAt,
	}
	if err := s.inventoryRepo.ReserveStockTx(ctx, tx, req); err != nil {
		if stderrors.Is(err, errors.SetCustomError(constant.ErrReservationConflict)) {
			// Another shopper won the remaining units between the
			// availability read and the guarded update
			logger.Info("[Reserve] reservation conflict", zap.Uint64("product_id", line.ProductID))
			return &model.ReserveResult{ProductID: line.ProductID, Reason: constant.ReserveReasonConflict}, nil
		}
		logger.Error("[Reserve] reserve stock", zap.String("error", err.Error()), zap.Uint64("product_id", line.ProductID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return &model.ReserveResult{ProductID: line.ProductID, Reserved: true}, nil
}

// ReleaseSession gives back every hold the session still has, used to
// compensate a checkout that failed after a partial reserve.
func (s *inventoryAppImpl) ReleaseSession(ctx context.Context, sessionID string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReleaseSession] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.inventoryRepo.ReleaseReservationsTx(ctx, tx, sessionID); err != nil {
		logger.Error("[ReleaseSession] release reservations", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReleaseSession] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// CleanupExpired releases every expired, unconfirmed reservation and
// reports how many were released. Safe to re-run at any time.
func (s *inventoryAppImpl) CleanupExpired(ctx context.Context) (*model.CleanupResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CleanupExpired] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	released, err := s.inventoryRepo.ReleaseExpiredTx(ctx, tx, time.Now())
	if err != nil {
		logger.Error("[CleanupExpired] release expired", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CleanupExpired] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if released > 0 {
		logger.Info("[CleanupExpired] reservations released", zap.Int64("count", released))
	}
	return &model.CleanupResponse{ReleasedCount: released}, nil
}
