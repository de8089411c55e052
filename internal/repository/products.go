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

// ProductRepository provides product reference-data operations.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{collection: db.Products}
}

// GetByID returns the product with the given id, or (nil, nil) when absent.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs returns the products matching the given ids, keyed by id.
// Missing ids are simply absent from the map.
func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	if len(ids) == 0 {
		return map[string]model.Product{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	result := make(map[string]model.Product, len(products))
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

// List returns products sorted by category then name. With onlyActive set,
// inactive products are excluded.
func (r *ProductRepository) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}

	sort := bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product, generating an id when none is set.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// Update replaces the mutable fields of an existing product and returns the
// stored document, or (nil, nil) when the product does not exist.
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":       product.Name,
		"category":   product.Category,
		"unit":       product.Unit,
		"price":      product.Price,
		"active":     product.Active,
		"updated_at": time.Now(),
	}}

	var updated model.Product
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": product.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a product. Returns false when no document matched.
func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
