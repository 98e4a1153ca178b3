package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	"github.com/nutrivitta/storefront/constant"
	"github.com/nutrivitta/storefront/model"
	utilsContext "github.com/nutrivitta/storefront/utils/context"
	"github.com/nutrivitta/storefront/utils/errors"
	validatorx "github.com/nutrivitta/storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config       *config.Config
	UserApp      userapp.UserApp
	CartApp      cartapp.CartApp
	ProductApp   productapp.ProductApp
	ShippingApp  shippingapp.ShippingApp
	CheckoutApp  checkoutapp.CheckoutApp
	OrderApp     orderapp.OrderApp
	InventoryApp inventoryapp.InventoryApp
	ERPApp       erpapp.ERPApp
	Poller       *confirmationapp.Poller
}

func NewTransport(rh *RestHandler) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public storefront routes
	router.HandleFunc("/session", rh.NewSession).Methods(http.MethodPost)
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/cart/{sessionID}", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart/{sessionID}", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/{sessionID}/items", rh.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/{sessionID}/items/{productID}", rh.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/cart/{sessionID}/items/{productID}", rh.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/shipping/quote", rh.ShippingQuote).Methods(http.MethodPost)
	router.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/checkout/{sessionID}/confirmation", rh.CheckoutConfirmation).Methods(http.MethodGet)
	router.HandleFunc("/orders/exists", rh.OrderExists).Methods(http.MethodGet)

	// Gateway server-to-server notification, guarded by HMAC signature
	router.HandleFunc("/webhooks/payment", rh.PaymentWebhook).Methods(http.MethodPost)

	// Protected routes
	router.HandleFunc("/profile", rh.Profile).Methods(http.MethodGet)

	// Internal routes for the cron trigger and the sweep consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(rh.Config.Internal.APIKey))
	internal.HandleFunc("/reservations/cleanup", rh.ReservationCleanup).Methods(http.MethodPost)
	internal.HandleFunc("/erp/refresh-token", rh.ERPRefreshToken).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

// NewSession handler
// @Summary Start guest session
// @Description Issue a guest session id used by cart, checkout and order polling
// @Tags Session
// @Produce json
// @Success 200 {object} model.GuestSessionResponse
// @Router /session [post]
func (s *RestHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.NewSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	writeSuccess(w, struct {
		ID uint64 `json:"id"`
	}{ID: id})
}

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 400 {object} errors.CustomError
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCart handler
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} model.Cart
// @Router /cart/{sessionID} [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.GetCart(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add cart item
// @Description Add a product or kit line to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body model.CartLineItem true "Line item"
// @Success 200 {object} model.Cart
// @Failure 400 {object} errors.CustomError
// @Router /cart/{sessionID}/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item model.CartLineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&item); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), mux.Vars(r)["sessionID"], item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCartItem handler
// @Summary Update line quantity
// @Description Set the quantity of a cart line; zero removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} model.Cart
// @Router /cart/{sessionID}/items/{productID} [put]
func (s *RestHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["productID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), vars["sessionID"], productID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveCartItem handler
// @Summary Remove cart line
// @Tags Cart
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param productID path int true "Product ID"
// @Success 200 {object} model.Cart
// @Router /cart/{sessionID}/items/{productID} [delete]
func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseUint(vars["productID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.RemoveItem(r.Context(), vars["sessionID"], productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Clear(r.Context(), mux.Vars(r)["sessionID"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ShippingQuote handler
// @Summary Quote shipping
// @Description Quote shipping options for a CEP and cart items
// @Tags Shipping
// @Accept json
// @Produce json
// @Param request body model.ShippingQuoteRequest true "Quote Request"
// @Success 200 {object} model.ShippingQuoteResponse
// @Failure 400 {object} errors.CustomError
// @Router /shipping/quote [post]
func (s *RestHandler) ShippingQuote(w http.ResponseWriter, r *http.Request) {
	var req model.ShippingQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidPostalCode))
		return
	}

	res, err := s.ShippingApp.Quote(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Checkout handler
// @Summary Submit checkout
// @Description Reserve stock and create the gateway order for the session's cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 409 {object} errors.CustomError
// @Failure 422 {object} errors.CustomError
// @Failure 502 {object} errors.CustomError
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CheckoutConfirmation handler
// @Summary Wait for order confirmation
// @Description Long-polls the order record the payment webhook creates
// @Tags Checkout
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} confirmation.Result
// @Failure 202 {object} errors.CustomError
// @Router /checkout/{sessionID}/confirmation [get]
func (s *RestHandler) CheckoutConfirmation(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]
	if sessionID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	result, err := s.Poller.Run(r.Context(), sessionID)
	if err != nil {
		// Client went away mid-poll; nothing useful to write
		return
	}

	switch result.State {
	case confirmationapp.StateFound:
		writeSuccess(w, result)
	case confirmationapp.StateNotFound:
		// Still processing is not a failure; the shopper is told to wait
		writeError(w, errors.SetCustomError(constant.ErrConfirmationTimeout))
	default:
		writeError(w, errors.SetCustomError(constant.ErrInternal))
	}
}

// OrderExists handler
// @Summary Check order existence
// @Description Single poll tick for clients doing their own polling
// @Tags Orders
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} model.OrderExistsResult
// @Router /orders/exists [get]
func (s *RestHandler) OrderExists(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.OrderExists(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PaymentWebhook handler
// @Summary Payment gateway webhook
// @Description Apply a gateway payment event; creates or advances the order
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} model.OrderEntity
// @Failure 401 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /webhooks/payment [post]
func (s *RestHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := verifyWebhookSignature(r, s.Config.Gateway.WebhookSecret)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var event model.PaymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&event); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.HandleWebhook(r.Context(), &event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReservationCleanup handler
// @Summary Release expired reservations
// @Description Cron/consumer trigger; idempotent
// @Tags Internal
// @Produce json
// @Success 200 {object} model.CleanupResponse
// @Router /internal/v1/reservations/cleanup [post]
func (s *RestHandler) ReservationCleanup(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.CleanupExpired(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ERPRefreshToken handler
// @Summary Refresh ERP access token
// @Tags Internal
// @Produce json
// @Success 200 {object} model.ERPRefreshResponse
// @Router /internal/v1/erp/refresh-token [post]
func (s *RestHandler) ERPRefreshToken(w http.ResponseWriter, r *http.Request) {
	res, err := s.ERPApp.RefreshToken(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
