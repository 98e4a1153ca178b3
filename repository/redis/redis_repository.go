package redis

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"

	redisclient "github.com/nutrivitta/storefront/cmd/redis"
	"github.com/nutrivitta/storefront/model"
)

// Repository defines methods for interacting with Redis key-values: auth
// sessions, checkout sessions and the cached ERP access token.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetCheckoutSession(ctx context.Context, session *model.CheckoutSession, ttl time.Duration) error
	GetCheckoutSession(ctx context.Context, sessionID string) (*model.CheckoutSession, error)
	DeleteCheckoutSession(ctx context.Context, sessionID string) error
	SetERPToken(ctx context.Context, token string, ttl time.Duration) error
	GetERPToken(ctx context.Context) (string, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores an auth session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "session:"+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from an auth session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, "session:"+sessionID).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes an auth session
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "session:"+sessionID).Err()
}

// SetCheckoutSession stores the checkout session document, PIX payload
// included, keyed by the checkout session id.
func (r *redis) SetCheckoutSession(ctx context.Context, session *model.CheckoutSession, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return client.Set(ctx, "checkout:"+session.SessionID, body, ttl).Err()
}

// GetCheckoutSession returns nil without error when no session is stored.
func (r *redis) GetCheckoutSession(ctx context.Context, sessionID string) (*model.CheckoutSession, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, "checkout:"+sessionID).Result()
	if err == redislib.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.CheckoutSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteCheckoutSession removes the checkout session document
func (r *redis) DeleteCheckoutSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, "checkout:"+sessionID).Err()
}

// SetERPToken caches the ERP access token until it expires
func (r *redis) SetERPToken(ctx context.Context, token string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, "erp:access_token", token, ttl).Err()
}

// GetERPToken returns an empty string when no token is cached
func (r *redis) GetERPToken(ctx context.Context) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, "erp:access_token").Result()
	if err == redislib.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
