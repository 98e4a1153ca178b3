package constant

// Per-item reservation failure reasons, reported verbatim to the caller so
// the storefront can message each line separately.
const (
	ReserveReasonOutOfStock = "OUT_OF_STOCK"
	ReserveReasonConflict   = "RESERVATION_CONFLICT"
)
