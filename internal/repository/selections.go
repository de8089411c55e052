package repository

import (
	"context"
	"time"

	"github.com/haugsdal/packboard/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SelectionRepository persists the active product selection per delivery date.
type SelectionRepository struct {
	collection *mongo.Collection
}

// NewSelectionRepository creates a new selection repository.
func NewSelectionRepository(db *MongoDB) *SelectionRepository {
	return &SelectionRepository{collection: db.Selections}
}

// GetByDate returns the selection for the given delivery date, or (nil, nil)
// when no selection has been made yet.
func (r *SelectionRepository) GetByDate(ctx context.Context, date string) (*model.ActiveSelection, error) {
	var selection model.ActiveSelection
	err := r.collection.FindOne(ctx, bson.M{"_id": date}).Decode(&selection)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &selection, nil
}

// Upsert replaces the selection for its delivery date.
func (r *SelectionRepository) Upsert(ctx context.Context, selection *model.ActiveSelection) error {
	selection.UpdatedAt = time.Now()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": selection.DeliveryDate},
		selection,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Clear removes the selection for a delivery date, returning the board to the
// unfiltered view. Returns false when nothing was stored.
func (r *SelectionRepository) Clear(ctx context.Context, date string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": date})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
