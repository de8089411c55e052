package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a whole order.
type OrderStatus string

const (
	// OrderPending indicates the order is waiting to be packed.
	OrderPending OrderStatus = "pending"
	// OrderInProgress indicates packing has started.
	OrderInProgress OrderStatus = "in_progress"
	// OrderPacked indicates every line has been packed.
	OrderPacked OrderStatus = "packed"
	// OrderCompleted indicates the order has been handed over.
	OrderCompleted OrderStatus = "completed"
	// OrderCancelled indicates the order was cancelled and must not appear
	// on packing views.
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderPacked, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// PackingRelevantStatuses are the order statuses that belong on a packing run.
// The order repository restricts delivery-date queries to these.
var PackingRelevantStatuses = []OrderStatus{OrderPending, OrderInProgress, OrderPacked}

// OrderLine is one product-quantity entry within an order.
//
// @Description One product-quantity entry of an order with its packing state
type OrderLine struct {
	// ID is unique per line.
	ID string `json:"id" bson:"id" example:"line-1"`
	// ProductID references the ordered product. Lines without a resolvable
	// product reference are skipped by the aggregation engine.
	ProductID string `json:"product_id" bson:"product_id" example:"prod-42"`
	// ProductName is the product name denormalized at order time.
	ProductName string `json:"product_name" bson:"product_name" example:"Sourdough loaf"`
	// ProductCategory is the category denormalized at order time.
	ProductCategory string `json:"product_category,omitempty" bson:"product_category,omitempty" example:"bread"`
	// ProductUnit is the unit denormalized at order time.
	ProductUnit string `json:"product_unit,omitempty" bson:"product_unit,omitempty" example:"pcs"`
	// Quantity is the ordered amount, always positive.
	Quantity int `json:"quantity" bson:"quantity" example:"5"`
	// UnitPrice is the product price denormalized at order time.
	UnitPrice decimal.Decimal `json:"unit_price" bson:"unit_price" swaggertype:"string" example:"34.50"`
	// PackingStatus is the line's packing lifecycle state.
	PackingStatus PackingStatus `json:"packing_status" bson:"packing_status" example:"pending"`
}

// LineTotal returns Quantity * UnitPrice.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order groups the lines a customer ordered for one delivery date.
//
// @Description Customer order for a single delivery date
type Order struct {
	// ID is the order identifier.
	ID string `json:"id" bson:"_id" example:"ord-2026-001"`
	// CustomerID references the ordering customer.
	CustomerID string `json:"customer_id" bson:"customer_id" example:"cust-7"`
	// CustomerName is the customer name denormalized at order time.
	CustomerName string `json:"customer_name" bson:"customer_name" example:"Kafe Fjell"`
	// DeliveryDate scopes the order to one packing run, formatted YYYY-MM-DD.
	DeliveryDate string `json:"delivery_date" bson:"delivery_date" example:"2026-09-01"`
	// Status is the order lifecycle state.
	Status OrderStatus `json:"status" bson:"status" example:"pending"`
	// Lines holds the order's product entries. Line order is irrelevant to
	// aggregation.
	Lines []OrderLine `json:"lines" bson:"lines"`
	// Notes carries free-form delivery or packing notes.
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// OrderTotal returns the sum of all line totals.
func (o Order) OrderTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// LineByID returns the line with the given id, or nil when absent.
func (o *Order) LineByID(lineID string) *OrderLine {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			return &o.Lines[i]
		}
	}
	return nil
}
