package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolioapi/internal/repository"
)

// Collection names, shared with any other tool reading the same database.
const (
	ClientsCollection  = "clients"
	ContactsCollection = "contact_submissions"
)

// Store is the MongoDB document store. The client is shared by all collections
// and safe for concurrent use.
type Store struct {
	client   *mongo.Client
	clients  *ClientRepository
	contacts *ContactRepository
}

// NewStore binds the collections of database dbName.
func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		client:   client,
		clients:  NewClientRepository(db.Collection(ClientsCollection)),
		contacts: NewContactRepository(db.Collection(ContactsCollection)),
	}
}

var _ repository.Store = (*Store)(nil)

func (s *Store) Clients() repository.ClientRepository   { return s.clients }
func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
