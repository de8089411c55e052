package repository

import (
	"context"
	"time"

	"github.com/haugsdal/packboard/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocID is the id of the singleton display settings document.
const settingsDocID = "display"

// settingsDocument wraps DisplaySettings with the fixed document id.
type settingsDocument struct {
	ID                    string `bson:"_id"`
	model.DisplaySettings `bson:",inline"`
}

// SettingsRepository persists the display settings singleton.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{collection: db.Settings}
}

// Get returns the stored display settings, or (nil, nil) when none exist yet.
// Callers are expected to Normalize the result.
func (r *SettingsRepository) Get(ctx context.Context) (*model.DisplaySettings, error) {
	var doc settingsDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.DisplaySettings, nil
}

// Upsert replaces the stored display settings.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *model.DisplaySettings) error {
	settings.UpdatedAt = time.Now()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": settingsDocID},
		settingsDocument{ID: settingsDocID, DisplaySettings: *settings},
		options.Replace().SetUpsert(true),
	)
	return err
}
