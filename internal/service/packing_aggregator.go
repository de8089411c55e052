package service

import (
	"math"
	"sort"

	"github.com/haugsdal/packboard/internal/domain/model"
	"github.com/haugsdal/packboard/internal/logger"
	"github.com/haugsdal/packboard/internal/metrics"
)

// AggregateOptions controls one aggregation pass.
type AggregateOptions struct {
	// ActiveFilter restricts which products are displayed. A nil or empty
	// selection displays everything. The filter never affects the overall
	// progress percentage, which always reflects every line.
	ActiveFilter *model.ActiveSelection
	// LimitToTopN truncates each customer's product list after aggregation,
	// keeping unfinished products first. Zero disables truncation.
	LimitToTopN int
}

// PackingAggregator defines the interface for packing-board aggregation.
type PackingAggregator interface {
	Aggregate(orders []model.Order, opts AggregateOptions) []model.AggregatedCustomer
}

// PackingAggregatorService implements PackingAggregator. It is a pure
// computation over the orders passed in: no I/O, no retained state, safe to
// call concurrently. Callers own date and order-status filtering as well as
// any caching or re-invocation policy.
type PackingAggregatorService struct{}

// NewPackingAggregatorService creates a new PackingAggregatorService.
func NewPackingAggregatorService() *PackingAggregatorService {
	return &PackingAggregatorService{}
}

// customerAccumulator collects per-customer state during a pass.
type customerAccumulator struct {
	customer     model.AggregatedCustomer
	productIndex map[string]int // product key -> index into customer.Products
}

// Aggregate turns raw orders into one card per customer: product rollups with
// summed quantities and packed/total line counts, plus an overall progress
// percentage. Customers and products appear in first-occurrence order.
//
// Lines without a resolvable product reference are skipped. The skip is
// deliberate, inherited behavior; a warning and a counter keep it observable.
func (s *PackingAggregatorService) Aggregate(orders []model.Order, opts AggregateOptions) []model.AggregatedCustomer {
	accs := make([]*customerAccumulator, 0, len(orders))
	accIndex := make(map[string]int, len(orders))
	filterActive := !opts.ActiveFilter.IsEmpty()

	for _, order := range orders {
		for _, line := range order.Lines {
			if line.ProductID == "" && line.ProductName == "" {
				metrics.SkippedOrderLines.Inc()
				log := logger.Logger()
				log.Warn().
					Str("order_id", order.ID).
					Str("line_id", line.ID).
					Msg("Skipping order line with no product reference")
				continue
			}

			acc := s.customerFor(&accs, accIndex, order)

			// The *_All counters always move so the percentage reflects true
			// completion, not just the displayed subset.
			acc.customer.TotalLineItemsAll++
			if line.PackingStatus.IsPacked() {
				acc.customer.PackedLineItemsAll++
			}

			if filterActive && !opts.ActiveFilter.Contains(line.ProductID, line.ProductName) {
				continue
			}

			s.accumulateLine(acc, line, opts.ActiveFilter)
		}
	}

	result := make([]model.AggregatedCustomer, 0, len(accs))
	for _, acc := range accs {
		c := acc.customer
		for i := range c.Products {
			c.Products[i].DeriveStatus()
		}
		c.ProgressPercentage = progressPercentage(c.PackedLineItemsAll, c.TotalLineItemsAll)
		if c.ProgressPercentage >= 100 {
			c.OverallStatus = model.OverallCompleted
		} else {
			c.OverallStatus = model.OverallOngoing
		}
		if opts.LimitToTopN > 0 {
			c.Products = truncateUnpackedFirst(c.Products, opts.LimitToTopN)
		}
		result = append(result, c)
	}

	return result
}

// customerFor finds or creates the accumulator for the order's customer.
func (s *PackingAggregatorService) customerFor(accs *[]*customerAccumulator, index map[string]int, order model.Order) *customerAccumulator {
	if i, ok := index[order.CustomerID]; ok {
		return (*accs)[i]
	}
	acc := &customerAccumulator{
		customer: model.AggregatedCustomer{
			ID:       order.CustomerID,
			Name:     order.CustomerName,
			Products: []model.AggregatedProduct{},
		},
		productIndex: make(map[string]int),
	}
	index[order.CustomerID] = len(*accs)
	*accs = append(*accs, acc)
	return acc
}

// accumulateLine folds one displayed line into the customer's product rollup.
func (s *PackingAggregatorService) accumulateLine(acc *customerAccumulator, line model.OrderLine, sel *model.ActiveSelection) {
	key := line.ProductID
	if key == "" {
		key = line.ProductName
	}

	i, ok := acc.productIndex[key]
	if !ok {
		i = len(acc.customer.Products)
		acc.productIndex[key] = i
		acc.customer.Products = append(acc.customer.Products, model.AggregatedProduct{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			ProductCategory: line.ProductCategory,
			ProductUnit:     line.ProductUnit,
			ColorIndex:      sel.ColorIndex(line.ProductID),
		})
	}

	p := &acc.customer.Products[i]
	p.TotalQuantity += line.Quantity
	p.TotalLineItems++
	acc.customer.TotalLineItems++
	if line.PackingStatus.IsPacked() {
		p.PackedLineItems++
		acc.customer.PackedLineItems++
	}
}

// progressPercentage returns round(packed/total*100), guarding the empty case.
func progressPercentage(packed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(packed) / float64(total) * 100))
}

// truncateUnpackedFirst sorts completed products after unfinished ones,
// keeping insertion order within each group, then takes the first n.
func truncateUnpackedFirst(products []model.AggregatedProduct, n int) []model.AggregatedProduct {
	sorted := make([]model.AggregatedProduct, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PackingStatus != model.PackingCompleted &&
			sorted[j].PackingStatus == model.PackingCompleted
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
