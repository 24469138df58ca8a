package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/kalikian/shopping-list-api/logger"
	"github.com/kalikian/shopping-list-api/models"
	"github.com/kalikian/shopping-list-api/repository"
)

const (
	maxNameLen     = 120
	maxCategoryLen = 64
	maxUnitLen     = 24
)

// ItemService owns the business rules for items: input hygiene, validation,
// and list-scoped persistence. It holds no mutable state; every operation is
// a single unit of work against the repository.
type ItemService struct {
	repo repository.ItemRepository
	log  *logger.Logger
}

func NewItemService(repo repository.ItemRepository, baseLog *logger.Logger) *ItemService {
	return &ItemService{repo: repo, log: baseLog.With("service", "ItemService")}
}

// Create validates and normalizes the request and inserts a new item. The
// done flag always starts false; category and unit collapse blank to absent
// at creation time (there is nothing to clear yet).
func (s *ItemService) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	if req.ListID == 0 {
		return nil, invalidArgument("list_id is required")
	}

	name := trimOrNil(&req.Name)
	if name == nil {
		return nil, invalidArgument("name must not be blank")
	}
	category := trimOrNil(req.Category)
	unit := trimOrNil(req.Unit)
	if err := checkLengths(name, category, unit); err != nil {
		return nil, err
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, invalidArgument("quantity must be >= 0")
	}

	item := &models.Item{
		ListID:   req.ListID,
		Name:     *name,
		Category: category,
		Quantity: req.Quantity,
		Unit:     unit,
		Done:     false,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	s.log.Info("item created", "item_id", item.ID, "list_id", item.ListID)
	return item, nil
}

// Get fetches one item by its (listID, itemID) scope.
func (s *ItemService) Get(ctx context.Context, listID, itemID uint) (*models.Item, error) {
	return s.fetchScoped(ctx, listID, itemID)
}

// ListByList returns a list's items newest first. onlyOpen restricts to
// not-done items; nameQuery filters by case-insensitive substring match.
// An empty list is a normal result, not an error.
func (s *ItemService) ListByList(ctx context.Context, listID uint, onlyOpen bool, nameQuery string) ([]models.Item, error) {
	query := ""
	if q := trimOrNil(&nameQuery); q != nil {
		query = *q
	}
	items, err := s.repo.ListByList(ctx, listID, onlyOpen, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Update applies a partial update. Each nil field in the patch leaves the
// stored value untouched. Name follows create's blank rule; category and
// unit accept an explicit "" as "clear this field", which is the one place
// their handling differs from create.
func (s *ItemService) Update(ctx context.Context, listID, itemID uint, patch models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.fetchScoped(ctx, listID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		cleaned := trimOrNil(patch.Name)
		if cleaned == nil {
			return nil, invalidArgument("name must not be blank")
		}
		if utf8.RuneCountInString(*cleaned) > maxNameLen {
			return nil, invalidArgument(fmt.Sprintf("name must be at most %d characters", maxNameLen))
		}
		item.Name = *cleaned
	}
	if patch.Category != nil {
		cleaned := trimKeepEmpty(patch.Category)
		if utf8.RuneCountInString(*cleaned) > maxCategoryLen {
			return nil, invalidArgument(fmt.Sprintf("category must be at most %d characters", maxCategoryLen))
		}
		item.Category = cleaned
	}
	if patch.Unit != nil {
		cleaned := trimKeepEmpty(patch.Unit)
		if utf8.RuneCountInString(*cleaned) > maxUnitLen {
			return nil, invalidArgument(fmt.Sprintf("unit must be at most %d characters", maxUnitLen))
		}
		item.Unit = cleaned
	}
	if patch.Done != nil {
		item.Done = *patch.Done
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, invalidArgument("quantity must be >= 0")
		}
		item.Quantity = patch.Quantity
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	s.log.Info("item updated", "item_id", item.ID, "list_id", item.ListID)
	return item, nil
}

// ToggleDone flips the done flag.
func (s *ItemService) ToggleDone(ctx context.Context, listID, itemID uint) (*models.Item, error) {
	item, err := s.fetchScoped(ctx, listID, itemID)
	if err != nil {
		return nil, err
	}
	item.Done = !item.Done
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// Delete removes the item if and only if it belongs to the list. The scoped
// delete reports its row count, which serves as the existence check; there
// is no separate lookup that could race with a concurrent delete.
func (s *ItemService) Delete(ctx context.Context, listID, itemID uint) error {
	deleted, err := s.repo.DeleteScoped(ctx, listID, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	s.log.Info("item deleted", "item_id", itemID, "list_id", listID)
	return nil
}

func (s *ItemService) fetchScoped(ctx context.Context, listID, itemID uint) (*models.Item, error) {
	item, err := s.repo.FindScoped(ctx, listID, itemID)
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func checkLengths(name, category, unit *string) error {
	if name != nil && utf8.RuneCountInString(*name) > maxNameLen {
		return invalidArgument(fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}
	if category != nil && utf8.RuneCountInString(*category) > maxCategoryLen {
		return invalidArgument(fmt.Sprintf("category must be at most %d characters", maxCategoryLen))
	}
	if unit != nil && utf8.RuneCountInString(*unit) > maxUnitLen {
		return invalidArgument(fmt.Sprintf("unit must be at most %d characters", maxUnitLen))
	}
	return nil
}
