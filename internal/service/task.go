package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alfredhq/alfred/internal/assistant"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

type TaskService struct {
	repo repository.TaskRepo
}

func NewTaskService(repo repository.TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask requires a title and a date; the date is never filled in.
func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) error {
	task.Title = strings.TrimSpace(task.Title)
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	if task.Source == "" {
		task.Source = model.SourceManual
	}

	if err := validateStruct(task); err != nil {
		return err
	}
	if err := task.Recurrence.Validate(); err != nil {
		return invalid(err)
	}
	if !task.Recurrence.IsZero() && task.SeriesID == "" {
		task.SeriesID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	slog.Info("task created", "uid", task.UserID, "id", task.ID, "source", task.Source)
	return nil
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *TaskService) Complete(ctx context.Context, userID string, id uint) (*model.Task, error) {
	task, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if task.Status == model.TaskDone {
		return task, nil
	}
	task.Status = model.TaskDone
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("complete task %d: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID string, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// RecentRefs returns the newest tasks reduced to what the assistant sees.
func (s *TaskService) RecentRefs(ctx context.Context, userID string, limit int) ([]assistant.TaskRef, error) {
	tasks, err := s.repo.Recent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	refs := make([]assistant.TaskRef, 0, len(tasks))
	for _, t := range tasks {
		refs = append(refs, assistant.TaskRef{ID: t.ID, Title: t.Title, Date: t.Date.Format("2006-01-02")})
	}
	return refs, nil
}

func (s *TaskService) owned(ctx context.Context, userID string, id uint) (*model.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if task.UserID != userID {
		return nil, ErrForbidden
	}
	return task, nil
}
