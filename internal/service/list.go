package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/assistant"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

type ListService struct {
	repo repository.ListRepo
}

func NewListService(repo repository.ListRepo) *ListService {
	return &ListService{repo: repo}
}

func (s *ListService) CreateList(ctx context.Context, userID, name string) (*model.ListGroup, error) {
	list := &model.ListGroup{UserID: userID, Name: strings.TrimSpace(name)}
	if err := validateStruct(list); err != nil {
		return nil, err
	}
	if err := s.repo.CreateList(ctx, list); err != nil {
		return nil, fmt.Errorf("create list: %w", err)
	}
	return list, nil
}

func (s *ListService) Lists(ctx context.Context, userID string) ([]model.ListGroup, error) {
	return s.repo.Lists(ctx, userID)
}

func (s *ListService) DeleteList(ctx context.Context, userID string, listID uint) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	return s.repo.DeleteList(ctx, listID)
}

// AddListItem adds item to one of the user's lists. A list that does not
// exist or belongs to someone else is ErrListNotFound.
func (s *ListService) AddListItem(ctx context.Context, userID string, item *model.ListItem) error {
	if _, err := s.ownedList(ctx, userID, item.ListID); err != nil {
		return err
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Source == "" {
		item.Source = model.SourceManual
	}
	if err := validateStruct(item); err != nil {
		return err
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return fmt.Errorf("add list item: %w", err)
	}
	return nil
}

func (s *ListService) ToggleItem(ctx context.Context, userID string, listID, itemID uint) (*model.ListItem, error) {
	item, err := s.ownedItem(ctx, userID, listID, itemID)
	if err != nil {
		return nil, err
	}
	item.Checked = !item.Checked
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("toggle item %d: %w", itemID, err)
	}
	return item, nil
}

func (s *ListService) DeleteItem(ctx context.Context, userID string, listID, itemID uint) error {
	if _, err := s.ownedItem(ctx, userID, listID, itemID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, itemID)
}

// ListRefs returns every list of the user reduced to id and name.
func (s *ListService) ListRefs(ctx context.Context, userID string) ([]assistant.ListRef, error) {
	lists, err := s.repo.Lists(ctx, userID)
	if err != nil {
		return nil, err
	}
	refs := make([]assistant.ListRef, 0, len(lists))
	for _, l := range lists {
		refs = append(refs, assistant.ListRef{ID: l.ID, Name: l.Name})
	}
	return refs, nil
}

func (s *ListService) ownedList(ctx context.Context, userID string, listID uint) (*model.ListGroup, error) {
	list, err := s.repo.GetList(ctx, listID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && list.UserID != userID) {
		return nil, ErrListNotFound
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ListService) ownedItem(ctx context.Context, userID string, listID, itemID uint) (*model.ListItem, error) {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return nil, err
	}
	item, err := s.repo.GetItem(ctx, listID, itemID)
	if err != nil {
		return nil, notFound(err)
	}
	return item, nil
}
