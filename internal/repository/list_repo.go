package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/model"
)

type ListRepo interface {
	CreateList(ctx context.Context, list *model.ListGroup) error
	GetList(ctx context.Context, id uint) (*model.ListGroup, error)
	// Lists returns the user's lists with their items.
	Lists(ctx context.Context, userID string) ([]model.ListGroup, error)
	DeleteList(ctx context.Context, id uint) error
	AddItem(ctx context.Context, item *model.ListItem) error
	GetItem(ctx context.Context, listID, itemID uint) (*model.ListItem, error)
	UpdateItem(ctx context.Context, item *model.ListItem) error
	DeleteItem(ctx context.Context, itemID uint) error
}

type listRepo struct {
	db *gorm.DB
}

func NewListRepo(db *gorm.DB) ListRepo {
	return &listRepo{db: db}
}

func (r *listRepo) CreateList(ctx context.Context, list *model.ListGroup) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *listRepo) GetList(ctx context.Context, id uint) (*model.ListGroup, error) {
	var list model.ListGroup
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepo) Lists(ctx context.Context, userID string) ([]model.ListGroup, error) {
	var lists []model.ListGroup
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&lists).Error
	return lists, err
}

func (r *listRepo) DeleteList(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&model.ListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ListGroup{}, id).Error
	})
}

func (r *listRepo) AddItem(ctx context.Context, item *model.ListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *listRepo) GetItem(ctx context.Context, listID, itemID uint) (*model.ListItem, error) {
	var item model.ListItem
	if err := r.db.WithContext(ctx).Where("list_id = ?", listID).First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *listRepo) UpdateItem(ctx context.Context, item *model.ListItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *listRepo) DeleteItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Delete(&model.ListItem{}, itemID).Error
}
