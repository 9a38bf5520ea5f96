package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

type TransactionService struct {
	repo   repository.TransactionRepo
	memory *MemoryService
}

func NewTransactionService(repo repository.TransactionRepo, memory *MemoryService) *TransactionService {
	return &TransactionService{repo: repo, memory: memory}
}

// CreateTransaction validates and stores tx. A recurring transaction
// becomes the head of a new series.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	tx.Description = strings.TrimSpace(tx.Description)
	tx.Category = strings.TrimSpace(tx.Category)
	if tx.Source == "" {
		tx.Source = model.SourceManual
	}

	if err := validateStruct(tx); err != nil {
		return err
	}
	if !tx.Amount.IsPositive() {
		return invalidf("amount must be positive, got %s", tx.Amount)
	}
	if err := tx.Recurrence.Validate(); err != nil {
		return invalid(err)
	}
	if !tx.Recurrence.IsZero() && tx.SeriesID == "" {
		tx.SeriesID = uuid.NewString()
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	slog.Info("transaction created", "uid", tx.UserID, "id", tx.ID, "type", tx.Type, "source", tx.Source)
	return nil
}

func (s *TransactionService) List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, int64, error) {
	return s.repo.List(ctx, filter)
}

// TransactionUpdate carries the fields a user may edit; nil means keep.
type TransactionUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *model.TransactionType
	Category    *string
	Date        *time.Time
}

func (s *TransactionService) Update(ctx context.Context, userID string, id uint, upd TransactionUpdate) (*model.Transaction, error) {
	existing, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		existing.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Amount != nil {
		existing.Amount = *upd.Amount
	}
	if upd.Type != nil {
		existing.Type = *upd.Type
	}
	if upd.Category != nil {
		existing.Category = strings.TrimSpace(*upd.Category)
	}
	if upd.Date != nil {
		existing.Date = *upd.Date
	}

	if err := validateStruct(existing); err != nil {
		return nil, err
	}
	if !existing.Amount.IsPositive() {
		return nil, invalidf("amount must be positive, got %s", existing.Amount)
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update transaction %d: %w", id, err)
	}

	// re-embed so later hints follow the corrected category
	s.memory.Remember(existing)
	return existing, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID string, id uint) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	s.memory.Forget(id)
	return nil
}

// Summary holds per-type totals for a period. Balance is income minus
// expenses and investments.
type Summary struct {
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Investment decimal.Decimal `json:"investment"`
	Balance    decimal.Decimal `json:"balance"`
}

func (s *TransactionService) Summary(ctx context.Context, userID string, start, end time.Time) (*Summary, error) {
	totals, err := s.repo.Totals(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	sum := &Summary{Income: decimal.Zero, Expense: decimal.Zero, Investment: decimal.Zero}
	for _, t := range totals {
		total := t.Total.Round(2)
		switch t.Type {
		case model.TransactionIncome:
			sum.Income = total
		case model.TransactionExpense:
			sum.Expense = total
		case model.TransactionInvestment:
			sum.Investment = total
		}
	}
	sum.Balance = sum.Income.Sub(sum.Expense).Sub(sum.Investment)
	return sum, nil
}

func (s *TransactionService) owned(ctx context.Context, userID string, id uint) (*model.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if tx.UserID != userID {
		return nil, ErrForbidden
	}
	return tx, nil
}
