package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	cartrepo "github.com/nutrivitta/storefront/repository/cart"
	"github.com/nutrivitta/storefront/utils/errors"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	NewSession(ctx context.Context) (*model.GuestSessionResponse, error)
	GetCart(ctx context.Context, sessionID string) (*model.Cart, error)
	AddItem(ctx context.Context, sessionID string, item model.CartLineItem) (*model.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID uint64) (*model.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID uint64, quantity int) (*model.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartAppImpl struct {
	config   *config.Config
	cartRepo cartrepo.CartRepository
}

func NewCartApp(config *config.Config, cartRepo cartrepo.CartRepository) CartApp {
	return &cartAppImpl{config: config, cartRepo: cartRepo}
}

// NewSession issues the id that keys guest checkout: the cart, the stock
// reservations and the order-exists poll all share it.
func (s *cartAppImpl) NewSession(ctx context.Context) (*model.GuestSessionResponse, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		logger.Error("[NewSession] uuid", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.GuestSessionResponse{
		SessionID: id.String(),
		ExpiresAt: time.Now().Add(s.config.Checkout.CartTTL),
	}, nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[GetCart] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return cart, nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, sessionID string, item model.CartLineItem) (*model.Cart, error) {
	if sessionID == "" || item.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if item.IsKit && len(item.KitProducts) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.apply(ctx, sessionID, func(c model.Cart) model.Cart {
		return model.AddItem(c, item)
	})
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, sessionID string, productID uint64) (*model.Cart, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.apply(ctx, sessionID, func(c model.Cart) model.Cart {
		return model.RemoveItem(c, productID)
	})
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID string, productID uint64, quantity int) (*model.Cart, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.apply(ctx, sessionID, func(c model.Cart) model.Cart {
		return model.UpdateQuantity(c, productID, quantity)
	})
}

func (s *cartAppImpl) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("[Clear] delete cart", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// apply loads the cart, runs a pure reducer over it and persists the result.
func (s *cartAppImpl) apply(ctx context.Context, sessionID string, reduce func(model.Cart) model.Cart) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[apply] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	next := reduce(*cart)
	if err := s.cartRepo.Save(ctx, &next, s.config.Checkout.CartTTL); err != nil {
		logger.Error("[apply] save cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &next, nil
}
