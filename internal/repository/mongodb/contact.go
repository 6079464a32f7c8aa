package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContactRepository is a MongoDB implementation of repository.ContactRepository.
type ContactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a new ContactRepository over the given collection.
func NewContactRepository(coll *mongo.Collection) *ContactRepository {
	return &ContactRepository{coll: coll}
}

var _ repository.ContactRepository = (*ContactRepository)(nil)

// Create inserts a single submission document.
func (r *ContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if res.InsertedID == nil {
		return repository.ErrNotInserted
	}
	return nil
}

// ListNewestFirst returns up to limit submissions sorted by timestamp descending.
func (r *ContactRepository) ListNewestFirst(ctx context.Context, limit int) ([]model.ContactSubmission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	items := make([]model.ContactSubmission, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
