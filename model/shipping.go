package model

type ShippingQuoteRequest struct {
	PostalCode string         `json:"postal_code" validate:"required,cep"`
	Items      []CartLineItem `json:"items" validate:"required,min=1,dive"`
}

type ShippingQuote struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DeliveryTime int     `json:"delivery_time"`
	Company      string  `json:"company"`
}

type ShippingQuoteResponse struct {
	Quotes []ShippingQuote `json:"quotes"`
}
