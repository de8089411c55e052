package model

import "time"

// Customer is a bakery customer whose orders appear on the packing board.
//
// @Description Bakery customer reference data
type Customer struct {
	// ID is the customer identifier.
	ID string `json:"id" bson:"_id" example:"cust-7"`
	// Name is the display name shown on packing cards.
	Name string `json:"name" bson:"name" example:"Kafe Fjell"`
	// ContactEmail is optional contact information.
	ContactEmail string `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	// Phone is optional contact information.
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	// Address is the delivery address.
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	// Active customers can be attached to new orders.
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
