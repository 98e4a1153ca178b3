package confirmation

import (
	"context"
	"time"

	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

// Payment approval arrives through the gateway webhook, outside any
// request/response cycle the storefront is in. The poller reconciles that
// gap: it repeatedly asks "does an order exist for this session yet" until
// it does or the attempt budget runs out. Exhausting the budget is framed as
// "still processing", never as a payment failure — by then real money may
// already have moved.

type State string

const (
	StateChecking State = "checking"
	StateFound    State = "found"
	StateNotFound State = "not_found"
	StateError    State = "error"
)

// OrderChecker is the eventually-consistent read the poller loops on.
// application/order.OrderApp satisfies it.
type OrderChecker interface {
	OrderExists(ctx context.Context, sessionID string) (*model.OrderExistsResult, error)
}

type Result struct {
	State    State                `json:"state"`
	OrderID  uint64               `json:"order_id,omitempty"`
	Status   constant.OrderStatus `json:"status,omitempty"`
	Attempts int                  `json:"attempts"`
}

type Poller struct {
	checker     OrderChecker
	interval    time.Duration
	maxAttempts int
}

func NewPoller(checker OrderChecker, cfg *config.Config) *Poller {
	return &Poller{
		checker:     checker,
		interval:    cfg.Confirmation.Interval,
		maxAttempts: cfg.Confirmation.MaxAttempts,
	}
}

// Run polls until the order appears, the budget is spent, or ctx is
// cancelled. The first attempt fires immediately; later ones are spaced by
// the interval. A transport error on a tick is a transient miss sharing the
// same budget: the state only ends up as StateError when the final attempt
// itself failed. Cancellation stops the loop before the next tick and
// returns ctx.Err().
func (p *Poller) Run(ctx context.Context, sessionID string) (*Result, error) {
	result := &Result{State: StateChecking}

	timer := time.NewTimer(0)
	defer timer.Stop()

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-timer.C:
		}

		result.Attempts = attempt
		found, err := p.checker.OrderExists(ctx, sessionID)
		if err != nil {
			lastErr = err
			logger.Warn("[confirmation] check failed",
				zap.String("session_id", sessionID), zap.Int("attempt", attempt), zap.String("error", err.Error()))
		} else if found.Exists {
			result.State = StateFound
			result.OrderID = found.OrderID
			result.Status = found.Status
			return result, nil
		} else {
			lastErr = nil
		}

		timer.Reset(p.interval)
	}

	if lastErr != nil {
		result.State = StateError
		return result, nil
	}
	result.State = StateNotFound
	return result, nil
}
