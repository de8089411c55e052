package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/haugsdal/packboard/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository provides order persistence and the delivery-date queries
// the packing board is built from.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{collection: db.Orders}
}

// ListByDeliveryDate returns every order for the given date whose status is
// still packing-relevant (pending, in_progress, packed). Cancelled and
// completed orders never reach the aggregation engine.
func (r *OrderRepository) ListByDeliveryDate(ctx context.Context, date string) ([]model.Order, error) {
	filter := bson.M{
		"delivery_date": date,
		"status":        bson.M{"$in": model.PackingRelevantStatuses},
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns the order with the given id, or (nil, nil) when absent.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts a new order, generating order and line ids when unset.
// New orders start pending with every line pending.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Lines {
		if order.Lines[i].ID == "" {
			order.Lines[i].ID = uuid.New().String()
		}
		if order.Lines[i].PackingStatus == "" {
			order.Lines[i].PackingStatus = model.PackingPending
		}
	}
	if order.Status == "" {
		order.Status = model.OrderPending
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// SetStatus updates the order-level status. Returns false when no document
// matched.
func (r *OrderRepository) SetStatus(ctx context.Context, id string, status model.OrderStatus) (bool, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// SetLineStatus updates one line's packing status and re-derives the order
// status from the resulting line states. Returns the updated order, or
// (nil, nil) when the order or line does not exist.
func (r *OrderRepository) SetLineStatus(ctx context.Context, orderID, lineID string, status model.PackingStatus) (*model.Order, error) {
	var updated model.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": orderID, "lines.id": lineID},
		bson.M{"$set": bson.M{
			"lines.$.packing_status": status,
			"updated_at":             time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	derived := deriveOrderStatus(updated)
	if derived != updated.Status {
		if _, err := r.SetStatus(ctx, orderID, derived); err != nil {
			return nil, err
		}
		updated.Status = derived
	}
	return &updated, nil
}

// Delete removes an order. Returns false when no document matched.
func (r *OrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// deriveOrderStatus maps line states onto the order lifecycle. Cancelled and
// completed orders keep their terminal status.
func deriveOrderStatus(order model.Order) model.OrderStatus {
	if order.Status == model.OrderCancelled || order.Status == model.OrderCompleted {
		return order.Status
	}

	total := len(order.Lines)
	packed := 0
	touched := 0
	for _, l := range order.Lines {
		if l.PackingStatus.IsPacked() {
			packed++
		}
		if l.PackingStatus != model.PackingPending {
			touched++
		}
	}

	switch {
	case total > 0 && packed == total:
		return model.OrderPacked
	case touched > 0:
		return model.OrderInProgress
	default:
		return model.OrderPending
	}
}
