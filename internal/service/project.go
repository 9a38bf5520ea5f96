package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

type ProjectService struct {
	repo repository.ProjectRepo
	now  func() time.Time
}

func NewProjectService(repo repository.ProjectRepo) *ProjectService {
	return &ProjectService{repo: repo, now: time.Now}
}

func (s *ProjectService) CreateProject(ctx context.Context, p *model.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Category == "" {
		p.Category = model.ProjectGoal
	}
	if p.Source == "" {
		p.Source = model.SourceManual
	}

	if err := validateStruct(p); err != nil {
		return err
	}
	if !p.TargetAmount.IsPositive() {
		return invalidf("target amount must be positive, got %s", p.TargetAmount)
	}
	if p.SavedAmount.IsNegative() {
		return invalidf("saved amount cannot be negative")
	}
	if p.Deadline != nil && p.Deadline.Before(startOfDay(s.now())) {
		return invalidf("deadline %s is in the past", p.Deadline.Format("2006-01-02"))
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]model.Project, error) {
	return s.repo.List(ctx, userID)
}

// Contribute adds amount to the project's saved total.
func (s *ProjectService) Contribute(ctx context.Context, userID string, id uint, amount decimal.Decimal) (*model.Project, error) {
	if !amount.IsPositive() {
		return nil, invalidf("contribution must be positive, got %s", amount)
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}
	if err := s.repo.AddSaved(ctx, id, amount); err != nil {
		return nil, fmt.Errorf("contribute to project %d: %w", id, err)
	}
	p, err := s.repo.GetByID(ctx, id)
	return p, notFound(err)
}

func (s *ProjectService) Delete(ctx context.Context, userID string, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) owned(ctx context.Context, userID string, id uint) (*model.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if p.UserID != userID {
		return nil, ErrForbidden
	}
	return p, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
