package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apporder "github.com/nutrivitta/storefront/application/order"
	"github.com/nutrivitta/storefront/constant"
	cartmocks "github.com/nutrivitta/storefront/mocks/repository/cart"
	inventorymocks "github.com/nutrivitta/storefront/mocks/repository/inventory"
	ordermocks "github.com/nutrivitta/storefront/mocks/repository/order"
	txmocks "github.com/nutrivitta/storefront/mocks/repository/tx"
	mailermocks "github.com/nutrivitta/storefront/mocks/thirdparty/mailer"
	"github.com/nutrivitta/storefront/model"
	cerr "github.com/nutrivitta/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func paidEvent(gatewaySessionID string) *model.PaymentWebhookEvent {
	return &model.PaymentWebhookEvent{
		EventID:          "evt-1",
		EventType:        "payment.updated",
		GatewaySessionID: gatewaySessionID,
		CustomerEmail:    "ana@example.com",
		TotalAmount:      299.80,
		ShippingAddress:  "Rua das Flores 120, Sao Paulo SP",
		Status:           "paid",
	}
}

func TestOrderApp_HandleWebhook(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		orderRepo     *ordermocks.OrderRepository
		inventoryRepo *inventorymocks.InventoryRepository
		cartRepo      *cartmocks.CartRepository
		mailerClient  *mailermocks.Client
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:        txmocks.NewTxRepository(t),
			orderRepo:     ordermocks.NewOrderRepository(t),
			inventoryRepo: inventorymocks.NewInventoryRepository(t),
			cartRepo:      cartmocks.NewCartRepository(t),
			mailerClient:  mailermocks.NewClient(t),
		}
	}
	tests := []struct {
		name       string
		event      *model.PaymentWebhookEvent
		mockCall   func(f fields)
		wantID     uint64
		wantStatus constant.OrderStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:  "success: first paid event creates the order and converts reservations",
			event: paidEvent("gw-sess-1"),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetByGatewaySessionTx", mock.Anything, tx, "gw-sess-1").Return(nil, nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(item *model.InsertOrderTxItem) bool {
					return item.GatewaySessionID == "gw-sess-1" &&
						item.Status == constant.OrderStatusPaid &&
						item.CustomerEmail == "ana@example.com"
				})).Return(uint64(42), nil).Once()
				f.inventoryRepo.On("ConvertReservationsTx", mock.Anything, tx, "gw-sess-1").Return(nil).Once()

				f.cartRepo.On("Delete", mock.Anything, "gw-sess-1").Return(nil).Once()
				f.mailerClient.On("SendOrderConfirmation", mock.Anything, "ana@example.com", uint64(42), 299.80).Return(nil).Once()
			},
			wantID:     42,
			wantStatus: constant.OrderStatusPaid,
		},
		{
			name:  "success: redelivered paid event is a no-op",
			event: paidEvent("gw-sess-2"),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetByGatewaySessionTx", mock.Anything, tx, "gw-sess-2").Return(&model.OrderEntity{
					ID:               7,
					GatewaySessionID: "gw-sess-2",
					Status:           constant.OrderStatusPaid,
					CreatedAt:        time.Now(),
				}, nil).Once()
			},
			wantID:     7,
			wantStatus: constant.OrderStatusPaid,
		},
		{
			name: "success: paid order moves forward to shipped",
			event: &model.PaymentWebhookEvent{
				EventID:          "evt-3",
				EventType:        "order.updated",
				GatewaySessionID: "gw-sess-3",
				CustomerEmail:    "ana@example.com",
				Status:           "shipped",
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetByGatewaySessionTx", mock.Anything, tx, "gw-sess-3").Return(&model.OrderEntity{
					ID:               8,
					GatewaySessionID: "gw-sess-3",
					Status:           constant.OrderStatusPaid,
				}, nil).Once()
				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(8), constant.OrderStatusPaid, constant.OrderStatusShipped).Return(nil).Once()
			},
			wantID:     8,
			wantStatus: constant.OrderStatusShipped,
		},
		{
			name: "error: backward transition is rejected",
			event: &model.PaymentWebhookEvent{
				EventID:          "evt-4",
				EventType:        "order.updated",
				GatewaySessionID: "gw-sess-4",
				CustomerEmail:    "ana@example.com",
				Status:           "paid",
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetByGatewaySessionTx", mock.Anything, tx, "gw-sess-4").Return(&model.OrderEntity{
					ID:               9,
					GatewaySessionID: "gw-sess-4",
					Status:           constant.OrderStatusShipped,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name: "error: shipped event for a session never confirmed",
			event: &model.PaymentWebhookEvent{
				EventID:          "evt-5",
				EventType:        "order.updated",
				GatewaySessionID: "gw-sess-5",
				CustomerEmail:    "ana@example.com",
				Status:           "shipped",
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetByGatewaySessionTx", mock.Anything, tx, "gw-sess-5").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: unknown status",
			event: &model.PaymentWebhookEvent{
				EventID:          "evt-6",
				EventType:        "order.updated",
				GatewaySessionID: "gw-sess-6",
				CustomerEmail:    "ana@example.com",
				Status:           "teleported",
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.txRepo, f.orderRepo, f.inventoryRepo, f.cartRepo, f.mailerClient)

			got, err := app.HandleWebhook(context.Background(), tt.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleWebhook() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != tt.wantID {
				t.Fatalf("HandleWebhook() ID = %d, want %d", got.ID, tt.wantID)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("HandleWebhook() Status = %s, want %s", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestOrderApp_OrderExists(t *testing.T) {
	type fields struct {
		txRepo        *txmocks.TxRepository
		orderRepo     *ordermocks.OrderRepository
		inventoryRepo *inventorymocks.InventoryRepository
		cartRepo      *cartmocks.CartRepository
	}
	tests := []struct {
		name       string
		sessionID  string
		mockCall   func(f fields)
		wantExists bool
		wantID     uint64
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:      "success: order found",
			sessionID: "gw-sess-1",
			mockCall: func(f fields) {
				f.orderRepo.On("GetByGatewaySession", mock.Anything, "gw-sess-1").Return(&model.OrderEntity{
					ID:        42,
					Status:    constant.OrderStatusPaid,
					CreatedAt: time.Now(),
				}, nil).Once()
			},
			wantExists: true,
			wantID:     42,
		},
		{
			name:      "success: no order yet",
			sessionID: "gw-sess-2",
			mockCall: func(f fields) {
				f.orderRepo.On("GetByGatewaySession", mock.Anything, "gw-sess-2").Return(nil, nil).Once()
			},
			wantExists: false,
		},
		{
			name:      "error: empty session id",
			sessionID: "",
			wantErr:   true,
			errCode:   constant.ErrInvalidRequest,
		},
		{
			name:      "error: lookup fails",
			sessionID: "gw-sess-3",
			mockCall: func(f fields) {
				f.orderRepo.On("GetByGatewaySession", mock.Anything, "gw-sess-3").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:        txmocks.NewTxRepository(t),
				orderRepo:     ordermocks.NewOrderRepository(t),
				inventoryRepo: inventorymocks.NewInventoryRepository(t),
				cartRepo:      cartmocks.NewCartRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := apporder.NewOrderApp(f.txRepo, f.orderRepo, f.inventoryRepo, f.cartRepo, nil)

			got, err := app.OrderExists(context.Background(), tt.sessionID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OrderExists() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Exists != tt.wantExists {
				t.Fatalf("OrderExists() Exists = %v, want %v", got.Exists, tt.wantExists)
			}
			if got.OrderID != tt.wantID {
				t.Fatalf("OrderExists() OrderID = %d, want %d", got.OrderID, tt.wantID)
			}
		})
	}
}
