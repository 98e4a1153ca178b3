package product_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appproduct "github.com/nutrivitta/storefront/application/product"
	"github.com/nutrivitta/storefront/constant"
	productmocks "github.com/nutrivitta/storefront/mocks/repository/product"
	"github.com/nutrivitta/storefront/model"
	cerr "github.com/nutrivitta/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_ListProducts(t *testing.T) {
	type args struct {
		page    int
		perPage int
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(m *productmocks.ProductRepository)
		want     *model.ProductListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first page",
			args: args{page: 1, perPage: 10},
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("List", mock.Anything, 1, 10).Return([]model.ProductListItem{
					{ID: 1, Name: "Whey 900g", AvailableStock: 12, Price: 149.90},
					{ID: 2, Name: "Kit Hipertrofia", AvailableStock: 4, Price: 299.90, IsKit: true},
				}, int64(2), nil).Once()
			},
			want: &model.ProductListResponse{
				Items: []model.ProductListItem{
					{ID: 1, Name: "Whey 900g", AvailableStock: 12, Price: 149.90},
					{ID: 2, Name: "Kit Hipertrofia", AvailableStock: 4, Price: 299.90, IsKit: true},
				},
				TotalCount: 2,
				Page:       1,
				PerPage:    10,
			},
		},
		{
			name: "success: zero paging falls back to defaults",
			args: args{page: 0, perPage: 0},
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("List", mock.Anything, 1, 10).Return([]model.ProductListItem{}, int64(0), nil).Once()
			},
			want: &model.ProductListResponse{
				Items:      []model.ProductListItem{},
				TotalCount: 0,
				Page:       1,
				PerPage:    10,
			},
		},
		{
			name: "error: repository fails",
			args: args{page: 1, perPage: 10},
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("List", mock.Anything, 1, 10).Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appproduct.NewProductApp(repo)

			got, err := app.ListProducts(context.Background(), tt.args.page, tt.args.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		mockCall func(m *productmocks.ProductRepository)
		want     *model.ProductDetail
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: plain product",
			id:   1,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductDetail{
					ID:             1,
					Name:           "Whey 900g",
					AvailableStock: 12,
					Price:          149.90,
				}, nil).Once()
			},
			want: &model.ProductDetail{
				ID:             1,
				Name:           "Whey 900g",
				AvailableStock: 12,
				Price:          149.90,
			},
		},
		{
			name: "success: kit with components",
			id:   2,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("GetByID", mock.Anything, uint64(2)).Return(&model.ProductDetail{
					ID:             2,
					Name:           "Kit Hipertrofia",
					AvailableStock: 4,
					Price:          299.90,
					IsKit:          true,
					KitProducts: []model.KitComponent{
						{ProductID: 1, Quantity: 1},
						{ProductID: 3, Quantity: 2},
					},
				}, nil).Once()
			},
			want: &model.ProductDetail{
				ID:             2,
				Name:           "Kit Hipertrofia",
				AvailableStock: 4,
				Price:          299.90,
				IsKit:          true,
				KitProducts: []model.KitComponent{
					{ProductID: 1, Quantity: 1},
					{ProductID: 3, Quantity: 2},
				},
			},
		},
		{
			name: "error: product not found",
			id:   99,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository fails",
			id:   1,
			mockCall: func(m *productmocks.ProductRepository) {
				m.On("GetByID", mock.Anything, uint64(1)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appproduct.NewProductApp(repo)

			got, err := app.GetProduct(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
