package order

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	cartrepo "github.com/nutrivitta/storefront/repository/cart"
	inventoryrepo "github.com/nutrivitta/storefront/repository/inventory"
	orderrepo "github.com/nutrivitta/storefront/repository/order"
	txrepo "github.com/nutrivitta/storefront/repository/tx"
	"github.com/nutrivitta/storefront/thirdparty/mailer"
	"github.com/nutrivitta/storefront/utils/errors"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	HandleWebhook(ctx context.Context, event *model.PaymentWebhookEvent) (*model.OrderEntity, error)
	OrderExists(ctx context.Context, sessionID string) (*model.OrderExistsResult, error)
}

type orderAppImpl struct {
	txRepo        txrepo.TxRepository
	orderRepo     orderrepo.OrderRepository
	inventoryRepo inventoryrepo.InventoryRepository
	cartRepo      cartrepo.CartRepository
	mailerClient  mailer.Client
}

func NewOrderApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, inventoryRepo inventoryrepo.InventoryRepository, cartRepo cartrepo.CartRepository, mailerClient mailer.Client) OrderApp {
	return &orderAppImpl{
		txRepo:        txRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		cartRepo:      cartRepo,
		mailerClient:  mailerClient,
	}
}

// HandleWebhook applies a gateway payment notification. The order record is
// created here and nowhere else; the storefront client only polls for it.
// Redelivered events are absorbed: the row is locked by gateway session id,
// a repeat of the current status is a no-op, and a backward transition is
// rejected.
func (s *orderAppImpl) HandleWebhook(ctx context.Context, event *model.PaymentWebhookEvent) (*model.OrderEntity, error) {
	status := constant.OrderStatus(event.Status)
	if !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[HandleWebhook] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.orderRepo.GetByGatewaySessionTx(ctx, tx, event.GatewaySessionID)
	if err != nil {
		logger.Error("[HandleWebhook] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if existing == nil {
		return s.confirmOrder(ctx, tx, event, status, &committed)
	}

	if existing.Status == status {
		// Duplicate delivery of an event already applied
		logger.Info("[HandleWebhook] duplicate event",
			zap.String("gateway_session_id", event.GatewaySessionID), zap.String("status", status.String()))
		return existing, nil
	}

	if !existing.Status.CanTransitionTo(status) {
		logger.Info("[HandleWebhook] rejected backward transition",
			zap.String("gateway_session_id", event.GatewaySessionID),
			zap.String("from", existing.Status.String()), zap.String("to", status.String()))
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, existing.ID, existing.Status, status); err != nil {
		logger.Error("[HandleWebhook] update status", zap.String("error", err.Error()))
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[HandleWebhook] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	existing.Status = status
	return existing, nil
}

// confirmOrder handles the first event for a session: the payment approval.
// Inside the transaction the order row is created and the session's
// reservations converted to a real stock decrement. The cart wipe and the
// confirmation email happen after commit and are not allowed to fail the
// confirmation.
func (s *orderAppImpl) confirmOrder(ctx context.Context, tx *sqlx.Tx, event *model.PaymentWebhookEvent, status constant.OrderStatus, committed *bool) (*model.OrderEntity, error) {
	if status != constant.OrderStatusPaid {
		// A shipped/delivered event for an order that was never
		// confirmed here has nothing to apply to
		logger.Warn("[HandleWebhook] event for unknown order",
			zap.String("gateway_session_id", event.GatewaySessionID), zap.String("status", status.String()))
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		GatewaySessionID: event.GatewaySessionID,
		CustomerEmail:    event.CustomerEmail,
		TotalAmount:      event.TotalAmount,
		Status:           constant.OrderStatusPaid,
		ShippingAddress:  event.ShippingAddress,
	})
	if err != nil {
		logger.Error("[HandleWebhook] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.inventoryRepo.ConvertReservationsTx(ctx, tx, event.GatewaySessionID); err != nil {
		logger.Error("[HandleWebhook] convert reservations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[HandleWebhook] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	*committed = true

	if err := s.cartRepo.Delete(ctx, event.GatewaySessionID); err != nil {
		logger.Error("[HandleWebhook] clear cart", zap.String("error", err.Error()))
	}

	if s.mailerClient != nil {
		if err := s.mailerClient.SendOrderConfirmation(ctx, event.CustomerEmail, orderID, event.TotalAmount); err != nil {
			logger.Error("[HandleWebhook] confirmation email", zap.String("error", err.Error()))
		}
	}

	return &model.OrderEntity{
		ID:               orderID,
		GatewaySessionID: event.GatewaySessionID,
		CustomerEmail:    event.CustomerEmail,
		TotalAmount:      event.TotalAmount,
		Status:           constant.OrderStatusPaid,
		ShippingAddress:  event.ShippingAddress,
	}, nil
}

// OrderExists is the eventually-consistent read the confirmation poller
// reconciles against.
func (s *orderAppImpl) OrderExists(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity, err := s.orderRepo.GetByGatewaySession(ctx, sessionID)
	if err != nil {
		logger.Error("[OrderExists] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return &model.OrderExistsResult{Exists: false}, nil
	}

	createdAt := entity.CreatedAt
	return &model.OrderExistsResult{
		Exists:    true,
		OrderID:   entity.ID,
		Status:    entity.Status,
		CreatedAt: &createdAt,
	}, nil
}
