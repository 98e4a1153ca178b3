package model

type ProductListItem struct {
	ID             uint64  `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	AvailableStock int64   `db:"available_stock" json:"available_stock"`
	Price          float64 `db:"price" json:"price"`
	IsKit          bool    `db:"is_kit" json:"is_kit"`
}

type ProductDetail struct {
	ID             uint64         `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Description    string         `db:"description" json:"description,omitempty"`
	AvailableStock int64          `db:"available_stock" json:"available_stock"`
	Price          float64        `db:"price" json:"price"`
	IsKit          bool           `db:"is_kit" json:"is_kit"`
	KitProducts    []KitComponent `json:"kit_products,omitempty"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}
