package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a bakery product customers can order.
//
// @Description Bakery product reference data
type Product struct {
	// ID is the product identifier.
	ID string `json:"id" bson:"_id" example:"prod-42"`
	// Name is the display name. Also used as a fallback match key when the
	// active selection stores names instead of ids.
	Name string `json:"name" bson:"name" example:"Sourdough loaf"`
	// Category groups products on displays, e.g. bread, pastry.
	Category string `json:"category,omitempty" bson:"category,omitempty" example:"bread"`
	// Unit is the unit of sale, e.g. pcs, kg.
	Unit string `json:"unit,omitempty" bson:"unit,omitempty" example:"pcs"`
	// Price is the unit price, denormalized onto order lines at order time.
	Price decimal.Decimal `json:"price" bson:"price" swaggertype:"string" example:"34.50"`
	// Active products can be ordered and selected for packing.
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
