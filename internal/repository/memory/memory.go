// Package memory provides an in-memory Store implementation. It backs the
// test suites and local development runs that have no MongoDB at hand.
package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/labstockease/insights/internal/domain/models"
	"github.com/labstockease/insights/internal/repository/mongodb"
)

// Store holds record snapshots keyed the same way the MongoDB collections
// are. Scans return records in insertion order, so results are deterministic
// for a fixed snapshot.
type Store struct {
	Items        map[string][]models.Item
	Restocks     map[string][]models.RestockBatch
	Users        []models.User
	Requisitions []models.Requisition
}

var _ mongodb.Store = (*Store)(nil)

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{
		Items:    make(map[string][]models.Item),
		Restocks: make(map[string][]models.RestockBatch),
	}
}

// AddItem appends an item to a collection.
func (s *Store) AddItem(collection string, item models.Item) {
	s.Items[collection] = append(s.Items[collection], item)
}

// AddRestock appends a restock batch to a collection.
func (s *Store) AddRestock(collection string, batch models.RestockBatch) {
	s.Restocks[collection] = append(s.Restocks[collection], batch)
}

// FindItemByCode returns the first item in the collection with the given
// code, or nil when none matches.
func (s *Store) FindItemByCode(_ context.Context, collection, itemCode string) (*models.Item, error) {
	for _, item := range s.Items[collection] {
		if item.ItemCode == itemCode {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// FindItemByID returns the item with the given id, or nil when absent.
func (s *Store) FindItemByID(_ context.Context, collection string, id primitive.ObjectID) (*models.Item, error) {
	for _, item := range s.Items[collection] {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// ListItems returns every item in the collection.
func (s *Store) ListItems(_ context.Context, collection string) ([]models.Item, error) {
	return append([]models.Item(nil), s.Items[collection]...), nil
}

// ListRestocks returns every restock batch in the collection.
func (s *Store) ListRestocks(_ context.Context, collection string) ([]models.RestockBatch, error) {
	return append([]models.RestockBatch(nil), s.Restocks[collection]...), nil
}

// FindUserByEmail returns nil when no user matches.
func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.Users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

// ListRequisitionsByItem returns requisitions with at least one line
// referencing the item.
func (s *Store) ListRequisitionsByItem(_ context.Context, itemID primitive.ObjectID) ([]models.Requisition, error) {
	var matched []models.Requisition
	for _, req := range s.Requisitions {
		for _, line := range req.Items {
			if line.Item == itemID {
				matched = append(matched, req)
				break
			}
		}
	}
	return matched, nil
}

// ListRequisitionsByUser returns requisitions requested by the user.
func (s *Store) ListRequisitionsByUser(_ context.Context, userID primitive.ObjectID) ([]models.Requisition, error) {
	var matched []models.Requisition
	for _, req := range s.Requisitions {
		if req.RequestedBy == userID {
			matched = append(matched, req)
		}
	}
	return matched, nil
}
