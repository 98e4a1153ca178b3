package erp

import (
	"context"
	"time"

	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	redisrepo "github.com/nutrivitta/storefront/repository/redis"
	"github.com/nutrivitta/storefront/thirdparty/erp"
	"github.com/nutrivitta/storefront/utils/errors"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

type ERPApp interface {
	RefreshToken(ctx context.Context) (*model.ERPRefreshResponse, error)
}

type erpAppImpl struct {
	client    erp.Client
	redisRepo redisrepo.Repository
}

func NewERPApp(client erp.Client, redisRepo redisrepo.Repository) ERPApp {
	return &erpAppImpl{client: client, redisRepo: redisRepo}
}

// RefreshToken exchanges the stored refresh token and caches the access
// token for the ERP sync worker. The cache TTL tracks the token's lifetime.
func (s *erpAppImpl) RefreshToken(ctx context.Context) (*model.ERPRefreshResponse, error) {
	token, err := s.client.RefreshToken(ctx)
	if err != nil {
		logger.Error("[RefreshToken] erp client", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrConfigurationMissing)
	}

	ttl := time.Duration(token.ExpiresIn) * time.Second
	if err := s.redisRepo.SetERPToken(ctx, token.AccessToken, ttl); err != nil {
		logger.Error("[RefreshToken] cache token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ERPRefreshResponse{ExpiresIn: token.ExpiresIn}, nil
}
