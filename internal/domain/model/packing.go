// Package model defines the core domain entities for the packboard service.
package model

// PackingStatus is the lifecycle state of a single order line.
type PackingStatus string

const (
	// PackingPending indicates the line has not been touched yet.
	PackingPending PackingStatus = "pending"
	// PackingInProgress indicates the line is being packed right now.
	PackingInProgress PackingStatus = "in_progress"
	// PackingPacked indicates the line has been packed.
	PackingPacked PackingStatus = "packed"
	// PackingCompleted indicates the line was packed and verified.
	PackingCompleted PackingStatus = "completed"
)

// IsValid reports whether s is a known packing status.
func (s PackingStatus) IsValid() bool {
	switch s {
	case PackingPending, PackingInProgress, PackingPacked, PackingCompleted:
		return true
	}
	return false
}

// IsPacked reports whether the line counts as packed for progress purposes.
// Both "packed" and "completed" count.
func (s PackingStatus) IsPacked() bool {
	return s == PackingPacked || s == PackingCompleted
}

// OverallStatus is the derived status of a customer's packing run.
type OverallStatus string

const (
	// OverallOngoing indicates at least one line is still unpacked.
	OverallOngoing OverallStatus = "ongoing"
	// OverallCompleted indicates every line is packed.
	OverallCompleted OverallStatus = "completed"
)

// AggregatedProduct is the per-customer rollup of all order lines for one product.
//
// @Description Per-customer product rollup with summed quantity and packed/total line counts
type AggregatedProduct struct {
	// ProductID references the product, carried from the first-seen line.
	ProductID string `json:"product_id" example:"prod-42"`
	// ProductName is the denormalized product name at fetch time.
	ProductName string `json:"product_name" example:"Sourdough loaf"`
	// ProductCategory is the denormalized category.
	ProductCategory string `json:"product_category,omitempty" example:"bread"`
	// ProductUnit is the denormalized unit of sale.
	ProductUnit string `json:"product_unit,omitempty" example:"pcs"`
	// TotalQuantity is the summed ordered quantity across the customer's lines.
	TotalQuantity int `json:"total_quantity" example:"8"`
	// TotalLineItems counts displayed lines for this product.
	TotalLineItems int `json:"total_line_items" example:"2"`
	// PackedLineItems counts displayed lines that are packed or completed.
	PackedLineItems int `json:"packed_line_items" example:"1"`
	// PackingStatus is derived from PackedLineItems vs TotalLineItems.
	PackingStatus PackingStatus `json:"packing_status" example:"in_progress"`
	// ColorIndex is the 0-2 rotating display color derived from the active selection order.
	ColorIndex int `json:"color_index" example:"0"`
}

// DeriveStatus recomputes PackingStatus from the line counters.
func (p *AggregatedProduct) DeriveStatus() {
	switch {
	case p.TotalLineItems > 0 && p.PackedLineItems >= p.TotalLineItems:
		p.PackingStatus = PackingCompleted
	case p.PackedLineItems > 0:
		p.PackingStatus = PackingInProgress
	default:
		p.PackingStatus = PackingPending
	}
}

// AggregatedCustomer is the output unit of the packing aggregation: one card
// per customer with the products relevant to them and overall progress.
//
// @Description Per-customer packing view with product rollups and progress percentage
type AggregatedCustomer struct {
	// ID is the customer identifier.
	ID string `json:"id" example:"cust-7"`
	// Name is the denormalized customer name.
	Name string `json:"name" example:"Kafe Fjell"`
	// Products lists the displayed product rollups, first-occurrence order
	// unless top-N truncation reorders them.
	Products []AggregatedProduct `json:"products"`
	// TotalLineItems counts displayed (filtered) lines across all products.
	TotalLineItems int `json:"total_line_items" example:"2"`
	// PackedLineItems counts displayed lines that are packed or completed.
	PackedLineItems int `json:"packed_line_items" example:"1"`
	// TotalLineItemsAll counts every line regardless of the active-product filter.
	TotalLineItemsAll int `json:"total_line_items_all" example:"4"`
	// PackedLineItemsAll counts every packed line regardless of the filter.
	PackedLineItemsAll int `json:"packed_line_items_all" example:"2"`
	// ProgressPercentage is round(PackedLineItemsAll/TotalLineItemsAll*100),
	// always computed from the unfiltered counters.
	ProgressPercentage int `json:"progress_percentage" example:"50"`
	// OverallStatus is "completed" when ProgressPercentage reaches 100.
	OverallStatus OverallStatus `json:"overall_status" example:"ongoing"`
}
