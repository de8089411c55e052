package repository

import (
	"context"
	"time"

	"github.com/haugsdal/packboard/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PackingEventDocument is one packing action recorded for the audit trail.
// Events age out via a TTL index (SetEventsTTL).
type PackingEventDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Timestamp    time.Time           `bson:"timestamp" json:"timestamp"`
	DeliveryDate string              `bson:"delivery_date" json:"delivery_date"`
	OrderID      string              `bson:"order_id" json:"order_id"`
	LineID       string              `bson:"line_id,omitempty" json:"line_id,omitempty"`
	ProductID    string              `bson:"product_id,omitempty" json:"product_id,omitempty"`
	Action       string              `bson:"action" json:"action"`
	OldStatus    model.PackingStatus `bson:"old_status,omitempty" json:"old_status,omitempty"`
	NewStatus    model.PackingStatus `bson:"new_status,omitempty" json:"new_status,omitempty"`
	RequestID    string              `bson:"request_id,omitempty" json:"request_id,omitempty"`
}

// EventsRepository records packing actions for later inspection.
type EventsRepository struct {
	collection *mongo.Collection
}

// NewEventsRepository creates a new events repository.
func NewEventsRepository(db *MongoDB) *EventsRepository {
	return &EventsRepository{collection: db.Events}
}

// Create inserts a new packing event.
func (r *EventsRepository) Create(ctx context.Context, event *PackingEventDocument) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// ListByDate returns the most recent events for a delivery date, newest first.
func (r *EventsRepository) ListByDate(ctx context.Context, date string, limit int) ([]*PackingEventDocument, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"delivery_date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var events []*PackingEventDocument
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
