package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/model"
)

type ChatRepo interface {
	// Append stores the messages in order, in one transaction.
	Append(ctx context.Context, msgs ...*model.ChatMessage) error
	// History returns the latest limit messages, oldest first.
	History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) ChatRepo {
	return &chatRepo{db: db}
}

func (r *chatRepo) Append(ctx context.Context, msgs ...*model.ChatMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range msgs {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *chatRepo) History(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	var list []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}
