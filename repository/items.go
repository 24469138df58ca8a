package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kalikian/shopping-list-api/logger"
	"github.com/kalikian/shopping-list-api/models"
)

// ItemRepository is the persistence boundary for items. Every read and write
// that touches an existing row is keyed by both list ID and item ID.
type ItemRepository interface {
	Insert(ctx context.Context, item *models.Item) error
	FindScoped(ctx context.Context, listID, itemID uint) (*models.Item, error)
	ListByList(ctx context.Context, listID uint, onlyOpen bool, nameQuery string) ([]models.Item, error)
	Save(ctx context.Context, item *models.Item) error
	DeleteScoped(ctx context.Context, listID, itemID uint) (int64, error)
}

type itemRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepository(db *gorm.DB, baseLog *logger.Logger) ItemRepository {
	return &itemRepository{db: db, log: baseLog.With("repo", "ItemRepository")}
}

func (r *itemRepository) Insert(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindScoped returns (nil, nil) when no row matches both keys; the service
// layer decides what "missing" means.
func (r *itemRepository) FindScoped(ctx context.Context, listID, itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListByList(ctx context.Context, listID uint, onlyOpen bool, nameQuery string) ([]models.Item, error) {
	items := []models.Item{}
	q := r.db.WithContext(ctx).Where("list_id = ?", listID)
	if onlyOpen {
		q = q.Where("done = ?", false)
	}
	if nameQuery != "" {
		q = q.Where("name ILIKE ?", "%"+nameQuery+"%")
	}
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		r.log.Error("list query failed", "list_id", listID, "error", err)
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteScoped deletes at most one row and reports how many went away. The
// count doubles as the existence check, so there is no read-then-delete race.
func (r *itemRepository) DeleteScoped(ctx context.Context, listID, itemID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		Delete(&models.Item{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
