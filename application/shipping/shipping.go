package shipping

import (
	"context"
	stderrors "errors"

	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	"github.com/nutrivitta/storefront/thirdparty/shipping"
	"github.com/nutrivitta/storefront/utils/errors"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

type ShippingApp interface {
	Quote(ctx context.Context, req *model.ShippingQuoteRequest) (*model.ShippingQuoteResponse, error)
}

type shippingAppImpl struct {
	client shipping.Client
}

func NewShippingApp(client shipping.Client) ShippingApp {
	return &shippingAppImpl{client: client}
}

func (s *shippingAppImpl) Quote(ctx context.Context, req *model.ShippingQuoteRequest) (*model.ShippingQuoteResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	quotes, err := s.client.Quote(ctx, req)
	if err != nil {
		var ce errors.CustomError
		if stderrors.As(err, &ce) {
			return nil, ce
		}
		logger.Error("[Quote] shipping client", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrShippingUnavailable)
	}

	return &model.ShippingQuoteResponse{Quotes: quotes}, nil
}
