package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ClientRepository is a MongoDB implementation of repository.ClientRepository.
type ClientRepository struct {
	coll *mongo.Collection
}

// NewClientRepository creates a new ClientRepository over the given collection.
func NewClientRepository(coll *mongo.Collection) *ClientRepository {
	return &ClientRepository{coll: coll}
}

var _ repository.ClientRepository = (*ClientRepository)(nil)

// Count returns the number of documents in the collection.
func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

// List returns up to limit clients in natural order.
func (r *ClientRepository) List(ctx context.Context, limit int) ([]model.Client, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	items := make([]model.Client, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a single client document.
func (r *ClientRepository) Create(ctx context.Context, c *model.Client) error {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if res.InsertedID == nil {
		return repository.ErrNotInserted
	}
	return nil
}

// CreateMany inserts all clients with one command.
func (r *ClientRepository) CreateMany(ctx context.Context, cs []model.Client) (int, error) {
	docs := make([]interface{}, len(cs))
	for i := range cs {
		docs[i] = cs[i]
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
