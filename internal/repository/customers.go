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

// CustomerRepository provides customer reference-data operations.
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(db *MongoDB) *CustomerRepository {
	return &CustomerRepository{collection: db.Customers}
}

// GetByID returns the customer with the given id, or (nil, nil) when absent.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// List returns customers sorted by name. With onlyActive set, inactive
// customers are excluded.
func (r *CustomerRepository) List(ctx context.Context, onlyActive bool) ([]model.Customer, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var customers []model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Create inserts a new customer, generating an id when none is set.
func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, customer)
	return err
}

// Update replaces the mutable fields of an existing customer and returns the
// stored document, or (nil, nil) when the customer does not exist.
func (r *CustomerRepository) Update(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	update := bson.M{"$set": bson.M{
		"name":          customer.Name,
		"contact_email": customer.ContactEmail,
		"phone":         customer.Phone,
		"address":       customer.Address,
		"active":        customer.Active,
		"updated_at":    time.Now(),
	}}

	var updated model.Customer
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": customer.ID},
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

// Delete removes a customer. Returns false when no document matched.
func (r *CustomerRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
