package checkout

import (
	"context"
	stderrors "errors"
	"time"

	inventoryapp "github.com/nutrivitta/storefront/application/inventory"
	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	cartrepo "github.com/nutrivitta/storefront/repository/cart"
	redisrepo "github.com/nutrivitta/storefront/repository/redis"
	"github.com/nutrivitta/storefront/thirdparty/gateway"
	"github.com/nutrivitta/storefront/utils/errors"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	Submit(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type checkoutAppImpl struct {
	config        *config.Config
	cartRepo      cartrepo.CartRepository
	inventoryApp  inventoryapp.InventoryApp
	gatewayClient gateway.Client
	redisRepo     redisrepo.Repository
}

func NewCheckoutApp(config *config.Config, cartRepo cartrepo.CartRepository, inventoryApp inventoryapp.InventoryApp, gatewayClient gateway.Client, redisRepo redisrepo.Repository) CheckoutApp {
	return &checkoutAppImpl{
		config:        config,
		cartRepo:      cartRepo,
		inventoryApp:  inventoryApp,
		gatewayClient: gatewayClient,
		redisRepo:     redisRepo,
	}
}

// Submit runs the checkout sequence: reserve stock for the cart, create the
// gateway order, persist the checkout session. The order record itself only
// appears later, through the gateway webhook; the caller polls for it.
func (s *checkoutAppImpl) Submit(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if !req.PaymentMethod.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// A PIX retry within the expiry window must reuse the payload already
	// issued instead of charging twice. Past the window the stale payload
	// is discarded and a fresh gateway order is requested.
	if req.PaymentMethod == constant.PaymentMethodPix {
		session, err := s.redisRepo.GetCheckoutSession(ctx, req.SessionID)
		if err != nil {
			logger.Error("[Submit] get checkout session", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if session != nil && session.PaymentMethod == constant.PaymentMethodPix {
			if !session.Pix.Expired(time.Now()) {
				return sessionResponse(session), nil
			}
			if err := s.redisRepo.DeleteCheckoutSession(ctx, req.SessionID); err != nil {
				logger.Error("[Submit] delete stale checkout session", zap.String("error", err.Error()))
			}
		}
	}

	cart, err := s.cartRepo.Get(ctx, req.SessionID)
	if err != nil {
		logger.Error("[Submit] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	if err := s.reserveCart(ctx, req.SessionID, cart); err != nil {
		return nil, err
	}

	gatewayResp, err := s.createGatewayOrder(ctx, req, cart)
	if err != nil {
		// Give the holds back right away rather than waiting for expiry
		if releaseErr := s.inventoryApp.ReleaseSession(ctx, req.SessionID); releaseErr != nil {
			logger.Error("[Submit] release after gateway failure", zap.String("error", releaseErr.Error()))
		}
		return nil, err
	}

	session := &model.CheckoutSession{
		SessionID:      req.SessionID,
		GatewayOrderID: gatewayResp.OrderID,
		PaymentMethod:  req.PaymentMethod,
		TotalAmount:    cart.Subtotal(),
		Pix:            gatewayResp.Pix,
		CreatedAt:      time.Now(),
	}
	if err := s.redisRepo.SetCheckoutSession(ctx, session, s.config.Checkout.SessionTTL); err != nil {
		logger.Error("[Submit] store checkout session", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := sessionResponse(session)
	resp.Charge = gatewayResp.Charge
	return resp, nil
}

// reserveCart blocks checkout on the first failed line: the already-reserved
// lines are released and the line's reason is surfaced. A partial order
// would not match the totals the shopper was quoted.
func (s *checkoutAppImpl) reserveCart(ctx context.Context, sessionID string, cart *model.Cart) error {
	results, err := s.inventoryApp.Reserve(ctx, sessionID, cart.ReservationLines())
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Reserved {
			continue
		}
		if releaseErr := s.inventoryApp.ReleaseSession(ctx, sessionID); releaseErr != nil {
			logger.Error("[Submit] release partial reservation", zap.String("error", releaseErr.Error()))
		}
		logger.Info("[Submit] reservation failed",
			zap.Uint64("product_id", result.ProductID), zap.String("reason", result.Reason))
		if result.Reason == constant.ReserveReasonConflict {
			return errors.SetCustomError(constant.ErrReservationConflict)
		}
		return errors.SetCustomError(constant.ErrOutOfStock)
	}
	return nil
}

func (s *checkoutAppImpl) createGatewayOrder(ctx context.Context, req *model.CheckoutRequest, cart *model.Cart) (*model.GatewayOrderResponse, error) {
	items := make([]model.GatewayOrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, model.GatewayOrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}

	gatewayReq := &model.GatewayOrderRequest{
		SessionID:     req.SessionID,
		Items:         items,
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
		CardToken:     req.CardToken,
	}

	resp, err := s.gatewayClient.CreateOrder(ctx, gatewayReq)
	if err != nil {
		var ce errors.CustomError
		if stderrors.As(err, &ce) {
			return nil, ce
		}
		logger.Error("[Submit] gateway order create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	switch req.PaymentMethod {
	case constant.PaymentMethodPix:
		if resp.Pix == nil {
			logger.Error("[Submit] gateway pix order missing payload", zap.String("gateway_order_id", resp.OrderID))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if resp.Pix.ExpiresAt.IsZero() {
			resp.Pix.ExpiresAt = time.Now().Add(constant.PixExpiration)
		}
	case constant.PaymentMethodCard:
		if resp.Charge == nil {
			logger.Error("[Submit] gateway card order missing charge result", zap.String("gateway_order_id", resp.OrderID))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if resp.Charge.Status == constant.ChargeStatusDeclined {
			logger.Info("[Submit] card declined", zap.String("gateway_order_id", resp.OrderID))
			return nil, errors.SetCustomError(constant.ErrGatewayRejected)
		}
	}

	return resp, nil
}

func sessionResponse(session *model.CheckoutSession) *model.CheckoutResponse {
	return &model.CheckoutResponse{
		SessionID:      session.SessionID,
		GatewayOrderID: session.GatewayOrderID,
		PaymentMethod:  session.PaymentMethod,
		TotalAmount:    session.TotalAmount,
		Pix:            session.Pix,
	}
}
