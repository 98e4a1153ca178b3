package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nutrivitta/storefront/model"
	"github.com/redis/go-redis/v9"
)

// CartRepository persists the session cart as a JSON document in Redis.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type Redis struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) CartRepository {
	return &Redis{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns an empty cart for an unknown session; a missing key is not an
// error at this layer.
func (r *Redis) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	val, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return &model.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *Redis) Save(ctx context.Context, cart *model.Cart, ttl time.Duration) error {
	cart.UpdatedAt = time.Now()
	body, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.SessionID), body, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}
