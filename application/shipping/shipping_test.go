package shipping_test

import (
	"context"
	"errors"
	"testing"

	appshipping "github.com/nutrivitta/storefront/application/shipping"
	"github.com/nutrivitta/storefront/constant"
	shippingmocks "github.com/nutrivitta/storefront/mocks/thirdparty/shipping"
	"github.com/nutrivitta/storefront/model"
	cerr "github.com/nutrivitta/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func quoteRequest() *model.ShippingQuoteRequest {
	return &model.ShippingQuoteRequest{
		PostalCode: "01310100",
		Items: []model.CartLineItem{
			{ProductID: 1, Name: "Whey 900g", Price: 149.90, Quantity: 1},
		},
	}
}

func TestShippingApp_Quote(t *testing.T) {
	tests := []struct {
		name       string
		req        *model.ShippingQuoteRequest
		mockCall   func(m *shippingmocks.Client)
		wantQuotes int
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: carriers returned",
			req:  quoteRequest(),
			mockCall: func(m *shippingmocks.Client) {
				m.On("Quote", mock.Anything, mock.Anything).Return([]model.ShippingQuote{
					{ID: "1", Name: "PAC", Price: 21.50, DeliveryTime: 8, Company: "Correios"},
					{ID: "2", Name: "SEDEX", Price: 42.90, DeliveryTime: 3, Company: "Correios"},
				}, nil).Once()
			},
			wantQuotes: 2,
		},
		{
			name:    "error: no items to quote",
			req:     &model.ShippingQuoteRequest{PostalCode: "01310100"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: invalid postal code passes through",
			req:  quoteRequest(),
			mockCall: func(m *shippingmocks.Client) {
				m.On("Quote", mock.Anything, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInvalidPostalCode)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPostalCode,
		},
		{
			name: "error: transport failure maps to shipping unavailable",
			req:  quoteRequest(),
			mockCall: func(m *shippingmocks.Client) {
				m.On("Quote", mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrShippingUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client := shippingmocks.NewClient(t)
			if tt.mockCall != nil {
				tt.mockCall(client)
			}
			app := appshipping.NewShippingApp(client)

			got, err := app.Quote(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Quote() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got.Quotes) != tt.wantQuotes {
				t.Fatalf("Quote() quotes = %d, want %d", len(got.Quotes), tt.wantQuotes)
			}
		})
	}
}
