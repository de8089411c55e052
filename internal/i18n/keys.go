package i18n

// Message keys for translated user-facing strings.
const (
	ErrKeyInvalidRequest         = "error.invalid_request"
	ErrKeyInvalidRequestBody     = "error.invalid_request_body"
	ErrKeyInternal               = "error.internal_error"
	ErrKeyNotFound               = "error.not_found"
	ErrKeyConflict               = "error.conflict"
	ErrKeyRateLimitExceeded      = "error.rate_limit_exceeded"
	ErrKeyInvalidDate            = "error.validation.delivery_date"
	ErrKeyInvalidStatus          = "error.validation.packing_status"
	ErrKeyInvalidQuantity        = "error.validation.quantity"
	ErrKeyTimeout                = "error.timeout"
	ErrKeyOrderNotFound          = "error.order_not_found"
	ErrKeyLineNotFound           = "error.order_line_not_found"
	ErrKeyCustomerNotFound       = "error.customer_not_found"
	ErrKeyProductNotFound        = "error.product_not_found"
	ErrKeyPackingDataUnavailable = "error.packing_data_unavailable"
)
