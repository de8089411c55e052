package model

import "time"

// selectionColorCount is the number of rotating display colors.
const selectionColorCount = 3

// ActiveSelection is the operator-chosen subset of products being packed
// right now, persisted per delivery date. Its sequence is the display order
// and drives the rotating color index on compact views.
//
// @Description Operator-selected products for the current packing run
type ActiveSelection struct {
	// DeliveryDate scopes the selection, formatted YYYY-MM-DD.
	DeliveryDate string `json:"delivery_date" bson:"_id" example:"2026-09-01"`
	// ProductIDs lists the selected products in display order.
	ProductIDs []string `json:"product_ids" bson:"product_ids"`
	// ProductNames mirrors ProductIDs positionally and is used as a fallback
	// match when order lines reference products by name only.
	ProductNames []string `json:"product_names,omitempty" bson:"product_names,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	UpdatedBy    string    `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
}

// IsEmpty reports whether the selection filters nothing. An empty selection
// means every product is displayed.
func (s *ActiveSelection) IsEmpty() bool {
	return s == nil || len(s.ProductIDs) == 0
}

// Contains reports whether the line identified by productID or productName is
// part of the selection. Name matching is the fallback for lines whose product
// reference predates id-based selections.
func (s *ActiveSelection) Contains(productID, productName string) bool {
	if s.IsEmpty() {
		return false
	}
	for _, id := range s.ProductIDs {
		if id != "" && id == productID {
			return true
		}
	}
	for _, name := range s.ProductNames {
		if name != "" && name == productName {
			return true
		}
	}
	return false
}

// ColorIndex returns the rotating 0-2 color slot for the product, derived from
// its position in the selection. Products outside the selection get slot 0.
func (s *ActiveSelection) ColorIndex(productID string) int {
	if s == nil {
		return 0
	}
	for i, id := range s.ProductIDs {
		if id == productID {
			return i % selectionColorCount
		}
	}
	return 0
}
