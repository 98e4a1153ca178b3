package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/nutrivitta/storefront/application/user"
	"github.com/nutrivitta/storefront/cmd/config"
	"github.com/nutrivitta/storefront/constant"
	redismocks "github.com/nutrivitta/storefront/mocks/repository/redis"
	usermocks "github.com/nutrivitta/storefront/mocks/repository/user"
	"github.com/nutrivitta/storefront/model"
	cerr "github.com/nutrivitta/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Phone:    "11987654321",
		Password: "segredo123",
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			userRepo:  usermocks.NewUserRepository(t),
			redisRepo: redismocks.NewRepository(t),
		}
	}
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new account",
			req:  registerRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "11987654321"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
					return ent.Email == "ana@example.com" && ent.PasswordHash != "" && ent.PasswordHash != "segredo123"
				})).Return(&model.UserEntity{
					ID:    1,
					Name:  "Ana Souza",
					Email: "ana@example.com",
				}, nil).Once()
			},
		},
		{
			name: "error: email taken",
			req:  registerRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).
					Return(&model.UserEntity{ID: 7, Email: "ana@example.com"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone taken",
			req:  registerRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "11987654321"}).
					Return(&model.UserEntity{ID: 7, Phone: "11987654321"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: lookup fails",
			req:  registerRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: create fails",
			req:  registerRequest(),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "11987654321"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("insert failed")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Email != tt.req.Email || got.Name != tt.req.Name {
				t.Fatalf("Register() = %+v, want %s / %s", got, tt.req.Name, tt.req.Email)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	account := &model.UserEntity{
		ID:           1,
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		Phone:        "11987654321",
		PasswordHash: string(hashed),
	}

	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login by email",
			req:  &model.LoginRequest{Identifier: "ana@example.com", Password: "segredo123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(account, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "success: login by phone",
			req:  &model.LoginRequest{Identifier: "11987654321", Password: "segredo123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "11987654321"}).Return(account, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: unknown account",
			req:  &model.LoginRequest{Identifier: "nobody@example.com", Password: "segredo123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "ana@example.com", Password: "errada"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(account, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: session store fails",
			req:  &model.LoginRequest{Identifier: "ana@example.com", Password: "segredo123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ana@example.com"}).Return(account, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(errors.New("redis error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	account := &model.UserEntity{ID: 1, Email: "ana@example.com", PasswordHash: string(hashed)}

	// A real token is obtained through Login; ValidateToken is then checked
	// against the session the login stored.
	login := func(t *testing.T, userRepo *usermocks.UserRepository, redisRepo *redismocks.Repository) string {
		t.Helper()
		userRepo.On("Get", mock.Anything, mock.Anything).Return(account, nil).Once()
		redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		resp, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "ana@example.com", Password: "segredo123"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		return resp.Token
	}

	t.Run("success: live session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(1), nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		got, err := app.ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if got != 1 {
			t.Fatalf("ValidateToken() = %d, want 1", got)
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRepository(t))
		if _, err := app.ValidateToken(context.Background(), "not.a.token"); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})

	t.Run("error: revoked session", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		token := login(t, userRepo, redisRepo)

		redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(0), errors.New("session not found")).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if _, err := app.ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})
}
