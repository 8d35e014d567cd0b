package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/labstockease/insights/internal/domain/models"
)

// Store defines the read-only record store queries the analytics engine
// needs. The engine never writes; nothing here mutates state.
type Store interface {
	// FindItemByCode returns the first item in the collection with the given
	// item_code, or nil when none matches.
	FindItemByCode(ctx context.Context, collection, itemCode string) (*models.Item, error)
	// FindItemByID returns the item with the given id, or nil when it does
	// not exist in the collection.
	FindItemByID(ctx context.Context, collection string, id primitive.ObjectID) (*models.Item, error)
	ListItems(ctx context.Context, collection string) ([]models.Item, error)
	ListRestocks(ctx context.Context, collection string) ([]models.RestockBatch, error)
	// FindUserByEmail returns nil when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListRequisitionsByItem returns requisitions with at least one line
	// referencing the item.
	ListRequisitionsByItem(ctx context.Context, itemID primitive.ObjectID) ([]models.Requisition, error)
	ListRequisitionsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Requisition, error)
}

// MongoStore implements Store against the inventory MongoDB database.
type MongoStore struct {
	client *mongo.Client
	dbName string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri string, dbName string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{client: client, dbName: dbName}, nil
}

func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// FindItemByCode looks up a single item by its human-readable code.
func (s *MongoStore) FindItemByCode(ctx context.Context, collection, itemCode string) (*models.Item, error) {
	var item models.Item
	err := s.collection(collection).FindOne(ctx, bson.M{"item_code": itemCode}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item by code in %s: %w", collection, err)
	}
	return &item, nil
}

// FindItemByID looks up a single item by its ObjectID.
func (s *MongoStore) FindItemByID(ctx context.Context, collection string, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := s.collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item by id in %s: %w", collection, err)
	}
	return &item, nil
}

// ListItems fetches every item record in the collection.
func (s *MongoStore) ListItems(ctx context.Context, collection string) ([]models.Item, error) {
	cursor, err := s.collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items in %s: %w", collection, err)
	}
	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items in %s: %w", collection, err)
	}
	return items, nil
}

// ListRestocks fetches every restock batch in the collection.
func (s *MongoStore) ListRestocks(ctx context.Context, collection string) ([]models.RestockBatch, error) {
	cursor, err := s.collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list restocks in %s: %w", collection, err)
	}
	var batches []models.RestockBatch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("failed to decode restocks in %s: %w", collection, err)
	}
	return batches, nil
}

// FindUserByEmail looks up a user record by email.
func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection(models.UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// ListRequisitionsByItem fetches requisitions referencing the item in any line.
func (s *MongoStore) ListRequisitionsByItem(ctx context.Context, itemID primitive.ObjectID) ([]models.Requisition, error) {
	return s.listRequisitions(ctx, bson.M{"items.item": itemID})
}

// ListRequisitionsByUser fetches requisitions requested by the user.
func (s *MongoStore) ListRequisitionsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Requisition, error) {
	return s.listRequisitions(ctx, bson.M{"requested_by": userID})
}

func (s *MongoStore) listRequisitions(ctx context.Context, filter bson.M) ([]models.Requisition, error) {
	cursor, err := s.collection(models.RequisitionsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list requisitions: %w", err)
	}
	var requisitions []models.Requisition
	if err := cursor.All(ctx, &requisitions); err != nil {
		return nil, fmt.Errorf("failed to decode requisitions: %w", err)
	}
	return requisitions, nil
}

// Close closes the MongoDB connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
