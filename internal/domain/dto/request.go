// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import (
	"time"

	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidDeliveryDate is returned when a delivery date is not YYYY-MM-DD.
	ErrInvalidDeliveryDate = &ValidationError{Field: "delivery_date", Message: "must be formatted YYYY-MM-DD"}
	// ErrInvalidQuantity is returned when a line quantity is not positive.
	ErrInvalidQuantity = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	// ErrInvalidPackingStatus is returned for unknown packing statuses.
	ErrInvalidPackingStatus = &ValidationError{Field: "packing_status", Message: "must be pending, in_progress, packed or completed"}
	// ErrEmptyLines is returned when an order carries no lines.
	ErrEmptyLines = &ValidationError{Field: "lines", Message: "must contain at least one line"}
	// ErrMissingProductRef is returned when a line names neither product id nor name.
	ErrMissingProductRef = &ValidationError{Field: "product_id", Message: "product reference is required"}
)

// ValidDeliveryDate reports whether s parses as YYYY-MM-DD.
func ValidDeliveryDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// CreateCustomerRequest is the JSON body for creating or updating a customer.
//
// @Description Customer create/update payload
type CreateCustomerRequest struct {
	Name         string `json:"name" binding:"required" example:"Kafe Fjell"`
	ContactEmail string `json:"contact_email,omitempty" example:"post@kafefjell.no"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Active       *bool  `json:"active,omitempty"`
} // @name CreateCustomerRequest

// IsActive resolves the optional active flag, defaulting to true.
func (r *CreateCustomerRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// CreateProductRequest is the JSON body for creating or updating a product.
//
// @Description Product create/update payload
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required" example:"Sourdough loaf"`
	Category string          `json:"category,omitempty" example:"bread"`
	Unit     string          `json:"unit,omitempty" example:"pcs"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"34.50"`
	Active   *bool           `json:"active,omitempty"`
} // @name CreateProductRequest

// IsActive resolves the optional active flag, defaulting to true.
func (r *CreateProductRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// OrderLineRequest is one product entry of an order payload.
type OrderLineRequest struct {
	ProductID string `json:"product_id" example:"prod-42"`
	Quantity  int    `json:"quantity" binding:"required,gt=0" example:"5"`
} // @name OrderLineRequest

// CreateOrderRequest is the JSON body for creating an order.
//
// @Description Order create payload; product attributes are denormalized server-side
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id" binding:"required" example:"cust-7"`
	DeliveryDate string             `json:"delivery_date" binding:"required" example:"2026-09-01"`
	Lines        []OrderLineRequest `json:"lines" binding:"required,min=1"`
	Notes        string             `json:"notes,omitempty"`
} // @name CreateOrderRequest

// Validate performs custom validation beyond binding tags.
func (r *CreateOrderRequest) Validate() error {
	if !ValidDeliveryDate(r.DeliveryDate) {
		return ErrInvalidDeliveryDate
	}
	if len(r.Lines) == 0 {
		return ErrEmptyLines
	}
	for _, l := range r.Lines {
		if l.ProductID == "" {
			return ErrMissingProductRef
		}
		if l.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// UpdateLineStatusRequest is the JSON body for setting a line's packing status.
//
// @Description Packing status update for a single order line
type UpdateLineStatusRequest struct {
	Status model.PackingStatus `json:"status" binding:"required" example:"packed"`
} // @name UpdateLineStatusRequest

// Validate checks that the status is a known packing status.
func (r *UpdateLineStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return ErrInvalidPackingStatus
	}
	return nil
}

// UpdateOrderStatusRequest is the JSON body for setting an order's lifecycle
// status. Status validity is checked at the service layer.
//
// @Description Order status update
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"cancelled"`
} // @name UpdateOrderStatusRequest

// UpdateSelectionRequest is the JSON body for replacing the active product
// selection of a delivery date.
//
// @Description Active product selection update
type UpdateSelectionRequest struct {
	ProductIDs   []string `json:"product_ids" binding:"required"`
	ProductNames []string `json:"product_names,omitempty"`
	UpdatedBy    string   `json:"updated_by,omitempty"`
} // @name UpdateSelectionRequest

// UpdateSettingsRequest is the JSON body for updating display settings.
// Unset fields keep their defaults.
//
// @Description Display settings update; omitted fields fall back to defaults
type UpdateSettingsRequest struct {
	ShowDate        *bool  `json:"show_date,omitempty"`
	ShowProgressBar *bool  `json:"show_progress_bar,omitempty"`
	Theme           string `json:"theme,omitempty" example:"dark"`
	CompactTopN     int    `json:"compact_top_n,omitempty" example:"3"`
	RefreshSeconds  int    `json:"refresh_seconds,omitempty" example:"30"`
} // @name UpdateSettingsRequest

// ToSettings converts the request into a DisplaySettings value.
func (r *UpdateSettingsRequest) ToSettings() model.DisplaySettings {
	s := model.DisplaySettings{
		ShowDate:        r.ShowDate,
		ShowProgressBar: r.ShowProgressBar,
		Theme:           r.Theme,
		CompactTopN:     r.CompactTopN,
	}
	if r.RefreshSeconds > 0 {
		s.RefreshInterval = time.Duration(r.RefreshSeconds) * time.Second
	}
	return s
}
