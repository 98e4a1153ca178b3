package model

import "time"

// KitComponent is one product inside a kit line, with the quantity the kit
// contributes per kit unit.
type KitComponent struct {
	ProductID uint64 `db:"product_id" json:"product_id" validate:"required"`
	Quantity  int    `db:"quantity" json:"quantity" validate:"required,gt=0"`
}

type CartLineItem struct {
	ProductID   uint64         `json:"product_id" validate:"required"`
	Name        string         `json:"name"`
	Price       float64        `json:"price" validate:"gte=0"`
	Quantity    int            `json:"quantity" validate:"required,gt=0"`
	IsKit       bool           `json:"is_kit"`
	KitProducts []KitComponent `json:"kit_products,omitempty" validate:"omitempty,dive"`
}

// Cart is the session-scoped intent of the shopper. It is never the record
// of what was paid for; that is the order, created by the gateway webhook.
type Cart struct {
	SessionID string         `json:"session_id"`
	Items     []CartLineItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) ItemCount() int {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}

func (c Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ReservationLines flattens the cart into per-product quantities. Kit lines
// expand into their components; repeated products accumulate.
func (c Cart) ReservationLines() []ReservationLine {
	acc := make(map[uint64]int)
	order := make([]uint64, 0, len(c.Items))
	add := func(productID uint64, qty int) {
		if _, seen := acc[productID]; !seen {
			order = append(order, productID)
		}
		acc[productID] += qty
	}

	for _, it := range c.Items {
		if it.IsKit {
			for _, comp := range it.KitProducts {
				add(comp.ProductID, comp.Quantity*it.Quantity)
			}
			continue
		}
		add(it.ProductID, it.Quantity)
	}

	lines := make([]ReservationLine, 0, len(order))
	for _, id := range order {
		lines = append(lines, ReservationLine{ProductID: id, Quantity: acc[id]})
	}
	return lines
}

// The reducers below are pure: they return the next cart state and never
// mutate the input, so cart behavior is testable without Redis.

func AddItem(c Cart, item CartLineItem) Cart {
	next := cloneCart(c)
	for i, it := range next.Items {
		if it.ProductID == item.ProductID && it.IsKit == item.IsKit {
			next.Items[i].Quantity += item.Quantity
			return next
		}
	}
	next.Items = append(next.Items, item)
	return next
}

func RemoveItem(c Cart, productID uint64) Cart {
	next := cloneCart(c)
	items := next.Items[:0]
	for _, it := range next.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	next.Items = items
	return next
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line.
func UpdateQuantity(c Cart, productID uint64, quantity int) Cart {
	if quantity <= 0 {
		return RemoveItem(c, productID)
	}
	next := cloneCart(c)
	for i, it := range next.Items {
		if it.ProductID == productID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

func ClearCart(c Cart) Cart {
	return Cart{SessionID: c.SessionID}
}

func cloneCart(c Cart) Cart {
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
