package analytics

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/labstockease/insights/internal/domain/models"
)

const maxSuggestions = 5

type suggestionKey struct {
	itemID string
	class  models.InventoryClass
}

// SuggestItems ranks the items a user requests most often and returns the
// top five with descriptive metadata.
func (s *Service) SuggestItems(ctx context.Context, email string) (*models.SuggestionList, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", email, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	requisitions, err := s.store.ListRequisitionsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load requisitions for user %s: %w", email, err)
	}

	// Keys are kept in first-occurrence order so that equal counts rank
	// deterministically for a fixed snapshot.
	counts := make(map[suggestionKey]int)
	var order []suggestionKey
	for _, req := range requisitions {
		for _, line := range req.Items {
			if line.Item.IsZero() || line.Class == "" {
				continue
			}
			key := suggestionKey{itemID: line.Item.Hex(), class: line.Class}
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxSuggestions {
		order = order[:maxSuggestions]
	}

	suggestions := make([]models.Suggestion, 0, len(order))
	for _, key := range order {
		item, ok := s.lookupSuggested(ctx, key)
		if !ok {
			continue
		}
		name := item.ItemName
		if name == "" {
			name = "Unknown"
		}
		suggestions = append(suggestions, models.Suggestion{
			ItemName:       name,
			Class:          key.class,
			TimesRequested: counts[key],
		})
	}

	return &models.SuggestionList{User: email, SuggestedItems: suggestions}, nil
}

// lookupSuggested resolves a counted key to its item record. Unknown classes
// and dangling references drop the entry rather than failing the request.
func (s *Service) lookupSuggested(ctx context.Context, key suggestionKey) (*models.Item, bool) {
	collection, ok := models.ItemCollections[key.class]
	if !ok {
		s.logger.Debug("dropping suggestion with unknown class",
			zap.String("class", string(key.class)), zap.String("item_id", key.itemID))
		return nil, false
	}

	id, err := primitive.ObjectIDFromHex(key.itemID)
	if err != nil {
		s.logger.Debug("dropping suggestion with malformed item id",
			zap.String("item_id", key.itemID), zap.Error(err))
		return nil, false
	}

	item, err := s.store.FindItemByID(ctx, collection, id)
	if err != nil {
		s.logger.Warn("suggestion item lookup failed",
			zap.String("item_id", key.itemID), zap.Error(err))
		return nil, false
	}
	if item == nil {
		return nil, false
	}
	return item, true
}
