package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrOutOfStock
	ErrReservationConflict
	ErrGatewayUnreachable
	ErrGatewayRejected
	ErrConfigurationMissing
	ErrConfirmationTimeout
	ErrInvalidOrderStatus
	ErrInvalidPostalCode
	ErrShippingUnavailable
	ErrCartEmpty
	ErrPixExpired
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "email or phone already exists",
	ErrInvalidPassword:      "password invalid",
	ErrOutOfStock:           "item out of stock",
	ErrReservationConflict:  "item was reserved by another shopper, please try again",
	ErrGatewayUnreachable:   "payment service unreachable, please retry",
	ErrGatewayRejected:      "payment rejected, please review your data",
	ErrConfigurationMissing: "payment service unavailable",
	ErrConfirmationTimeout:  "order still processing, check your email in a few minutes",
	ErrInvalidOrderStatus:   "invalid order status",
	ErrInvalidPostalCode:    "check your CEP and try again",
	ErrShippingUnavailable:  "shipping quote unavailable, please retry",
	ErrCartEmpty:            "cart is empty",
	ErrPixExpired:           "pix code expired, a new one is required",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrOutOfStock:           http.StatusConflict,
	ErrReservationConflict:  http.StatusConflict,
	ErrGatewayUnreachable:   http.StatusBadGateway,
	ErrGatewayRejected:      http.StatusUnprocessableEntity,
	ErrConfigurationMissing: http.StatusServiceUnavailable,
	ErrConfirmationTimeout:  http.StatusAccepted,
	ErrInvalidOrderStatus:   http.StatusConflict,
	ErrInvalidPostalCode:    http.StatusBadRequest,
	ErrShippingUnavailable:  http.StatusBadGateway,
	ErrCartEmpty:            http.StatusBadRequest,
	ErrPixExpired:           http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidPassword:      "0006",
	ErrOutOfStock:           "0007",
	ErrReservationConflict:  "0008",
	ErrGatewayUnreachable:   "0009",
	ErrGatewayRejected:      "0010",
	ErrConfigurationMissing: "0011",
	ErrConfirmationTimeout:  "0012",
	ErrInvalidOrderStatus:   "0013",
	ErrInvalidPostalCode:    "0014",
	ErrShippingUnavailable:  "0015",
	ErrCartEmpty:            "0016",
	ErrPixExpired:           "0017",
}
