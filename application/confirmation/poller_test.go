package confirmation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nutrivitta/storefront/application/confirmation"
	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
)

// checkerFunc lets each case script the per-attempt answers inline.
type checkerFunc func(ctx context.Context, sessionID string) (*model.OrderExistsResult, error)

func (f checkerFunc) OrderExists(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
	return f(ctx, sessionID)
}

func testConfig(maxAttempts int) *config.Config {
	return &config.Config{
		Confirmation: config.ConfirmationConfig{
			Interval:    time.Millisecond,
			MaxAttempts: maxAttempts,
		},
	}
}

func TestPoller_Run(t *testing.T) {
	tests := []struct {
		name         string
		maxAttempts  int
		checker      func(calls *int) checkerFunc
		wantState    confirmation.State
		wantOrderID  uint64
		wantAttempts int
	}{
		{
			name:        "found on the third attempt",
			maxAttempts: 10,
			checker: func(calls *int) checkerFunc {
				return func(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
					*calls++
					if *calls < 3 {
						return &model.OrderExistsResult{Exists: false}, nil
					}
					return &model.OrderExistsResult{Exists: true, OrderID: 42, Status: constant.OrderStatusPaid}, nil
				}
			},
			wantState:    confirmation.StateFound,
			wantOrderID:  42,
			wantAttempts: 3,
		},
		{
			name:        "never appears: budget exhausted as not found",
			maxAttempts: 5,
			checker: func(calls *int) checkerFunc {
				return func(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
					*calls++
					return &model.OrderExistsResult{Exists: false}, nil
				}
			},
			wantState:    confirmation.StateNotFound,
			wantAttempts: 5,
		},
		{
			name:        "every attempt errors: final state is error",
			maxAttempts: 4,
			checker: func(calls *int) checkerFunc {
				return func(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
					*calls++
					return nil, errors.New("connection refused")
				}
			},
			wantState:    confirmation.StateError,
			wantAttempts: 4,
		},
		{
			name:        "early errors recover: clean final miss is not found",
			maxAttempts: 3,
			checker: func(calls *int) checkerFunc {
				return func(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
					*calls++
					if *calls < 3 {
						return nil, errors.New("connection refused")
					}
					return &model.OrderExistsResult{Exists: false}, nil
				}
			},
			wantState:    confirmation.StateNotFound,
			wantAttempts: 3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			poller := confirmation.NewPoller(tt.checker(&calls), testConfig(tt.maxAttempts))

			got, err := poller.Run(context.Background(), "gw-sess-1")
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got.State != tt.wantState {
				t.Fatalf("Run() State = %s, want %s", got.State, tt.wantState)
			}
			if got.OrderID != tt.wantOrderID {
				t.Fatalf("Run() OrderID = %d, want %d", got.OrderID, tt.wantOrderID)
			}
			if got.Attempts != tt.wantAttempts {
				t.Fatalf("Run() Attempts = %d, want %d", got.Attempts, tt.wantAttempts)
			}
			if calls != tt.wantAttempts {
				t.Fatalf("checker calls = %d, want %d", calls, tt.wantAttempts)
			}
		})
	}
}

func TestPoller_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	checker := checkerFunc(func(ctx context.Context, sessionID string) (*model.OrderExistsResult, error) {
		// cancel after the first miss so the loop stops at the next tick
		cancel()
		return &model.OrderExistsResult{Exists: false}, nil
	})

	poller := confirmation.NewPoller(checker, testConfig(10))

	got, err := poller.Run(ctx, "gw-sess-1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if got.State != confirmation.StateChecking {
		t.Fatalf("Run() State = %s, want %s", got.State, confirmation.StateChecking)
	}
	if got.Attempts != 1 {
		t.Fatalf("Run() Attempts = %d, want 1", got.Attempts)
	}
}
