package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/nutrivitta/storefront/application/cart"
	checkoutapp "github.com/nutrivitta/storefront/application/checkout"
	confirmationapp "github.com/nutrivitta/storefront/application/confirmation"
	erpapp "github.com/nutrivitta/storefront/application/erp"
	inventoryapp "github.com/nutrivitta/storefront/application/inventory"
	orderapp "github.com/nutrivitta/storefront/application/order"
	productapp "github.com/nutrivitta/storefront/application/product"
	shippingapp "github.com/nutrivitta/storefront/application/shipping"
	userapp "github.com/nutrivitta/storefront/application/user"
	"github.com/nutrivitta/storefront/cmd/config"
	redisclient "github.com/nutrivitta/storefront/cmd/redis"
	_ "github.com/nutrivitta/storefront/docs"
	cartRepo "github.com/nutrivitta/storefront/repository/cart"
	inventoryRepo "github.com/nutrivitta/storefront/repository/inventory"
	orderRepo "github.com/nutrivitta/storefront/repository/order"
	productRepo "github.com/nutrivitta/storefront/repository/product"
	redisRepo "github.com/nutrivitta/storefront/repository/redis"
	txRepo "github.com/nutrivitta/storefront/repository/tx"
	userRepo "github.com/nutrivitta/storefront/repository/user"
	"github.com/nutrivitta/storefront/thirdparty/erp"
	"github.com/nutrivitta/storefront/thirdparty/gateway"
	"github.com/nutrivitta/storefront/thirdparty/mailer"
	"github.com/nutrivitta/storefront/thirdparty/rabbitmq"
	"github.com/nutrivitta/storefront/thirdparty/shipping"
	"github.com/nutrivitta/storefront/transport"
	"github.com/nutrivitta/storefront/utils/logger"
	"go.uber.org/zap"
)

// @title Nutrivitta Storefront API
// @version 1.0
// @description Checkout, inventory reservation and order confirmation API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Apply schema migrations
	if err := runMigrations(db, cfg); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// RabbitMQ: delayed sweep messages scheduled at reserve time, consumed
	// back into the internal cleanup endpoint. The cron trigger on the same
	// endpoint covers an unavailable broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq publisher, sweep scheduling disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.BaseURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Error("err connect rabbitmq consumer, sweep consumption disabled", zap.Error(err))
	} else {
		defer consumer.Close()
		if err := consumer.Start(context.Background()); err != nil {
			logger.Error("err start sweep consumer", zap.Error(err))
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	CartRepo := cartRepo.NewCartRepository(redisclient.Get())
	RedisRepo := redisRepo.NewRepository()

	// Third-party clients
	GatewayClient := gateway.NewHTTPClient(cfg)
	ShippingClient := shipping.NewHTTPClient(cfg)
	MailerClient := mailer.NewHTTPClient(cfg)
	ERPClient := erp.NewHTTPClient(cfg)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CartApp := cartapp.NewCartApp(cfg, CartRepo)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, TxRepo, InventoryRepo, publisher)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, CartRepo, InventoryApp, GatewayClient, RedisRepo)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, InventoryRepo, CartRepo, MailerClient)
	ShippingApp := shippingapp.NewShippingApp(ShippingClient)
	ERPApp := erpapp.NewERPApp(ERPClient, RedisRepo)
	Poller := confirmationapp.NewPoller(OrderApp, cfg)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:       cfg,
		UserApp:      UserApp,
		CartApp:      CartApp,
		ProductApp:   ProductApp,
		ShippingApp:  ShippingApp,
		CheckoutApp:  CheckoutApp,
		OrderApp:     OrderApp,
		InventoryApp: InventoryApp,
		ERPApp:       ERPApp,
		Poller:       Poller,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

func runMigrations(db *sqlx.DB, cfg *config.Config) error {
	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Database.MigrationsPath, "mysql", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
