package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

func TestTransactionService_CreateValidates(t *testing.T) {
	svc := NewTransactionService(repository.NewTransactionRepo(newTestDB(t)), nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(tx *model.Transaction)
	}{
		{"zero amount", func(tx *model.Transaction) { tx.Amount = decimal.Zero }},
		{"negative amount", func(tx *model.Transaction) { tx.Amount = decimal.NewFromInt(-3) }},
		{"unknown type", func(tx *model.Transaction) { tx.Type = "TRANSFER" }},
		{"empty category", func(tx *model.Transaction) { tx.Category = "  " }},
		{"zero date", func(tx *model.Transaction) { tx.Date = time.Time{} }},
		{"bad recurrence", func(tx *model.Transaction) { tx.Recurrence = model.Recurrence{Period: "HOURLY", Interval: 1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := expense("u1", "Café", 8)
			tt.mutate(tx)
			assert.ErrorIs(t, svc.CreateTransaction(ctx, tx), ErrInvalidInput)
		})
	}
}

func TestTransactionService_CreateRecurringStartsSeries(t *testing.T) {
	svc := NewTransactionService(repository.NewTransactionRepo(newTestDB(t)), nil)

	limit := 10
	tx := expense("u1", "Geladeira", 300)
	tx.Recurrence = model.Recurrence{Period: model.PeriodMonthly, Interval: 1, Limit: &limit}

	require.NoError(t, svc.CreateTransaction(context.Background(), tx))
	assert.NotZero(t, tx.ID)
	assert.NotEmpty(t, tx.SeriesID)
	assert.Equal(t, model.SourceManual, tx.Source)
}

func TestTransactionService_Ownership(t *testing.T) {
	ctx := context.Background()
	mem := &fakeMemoryRepo{}
	memory := NewMemoryService(&fakeEmbedder{}, mem)
	svc := NewTransactionService(repository.NewTransactionRepo(newTestDB(t)), memory)

	tx := expense("u1", "Cinema", 40)
	require.NoError(t, svc.CreateTransaction(ctx, tx))

	category := "Lazer"
	_, err := svc.Update(ctx, "u2", tx.ID, TransactionUpdate{Category: &category})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "u2", tx.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "u1", 999), ErrNotFound)

	updated, err := svc.Update(ctx, "u1", tx.ID, TransactionUpdate{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, "Lazer", updated.Category)

	require.NoError(t, svc.Delete(ctx, "u1", tx.ID))
	memory.Wait()

	require.Len(t, mem.saved, 1)
	assert.Equal(t, "Lazer", mem.saved[0].Category)
	assert.Equal(t, []uint{tx.ID}, mem.deleted)
}

func TestTransactionService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := NewTransactionService(repository.NewTransactionRepo(newTestDB(t)), nil)

	salary := expense("u1", "Salário", 5000)
	salary.Type = model.TransactionIncome
	invest := expense("u1", "Tesouro", 1000)
	invest.Type = model.TransactionInvestment
	for _, tx := range []*model.Transaction{salary, invest, expense("u1", "Aluguel", 1500), expense("u1", "Luz", 200)} {
		require.NoError(t, svc.CreateTransaction(ctx, tx))
	}

	sum, err := svc.Summary(ctx, "u1", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "5000", sum.Income.String())
	assert.Equal(t, "1700", sum.Expense.String())
	assert.Equal(t, "1000", sum.Investment.String())
	assert.Equal(t, "2300", sum.Balance.String())

	empty, err := svc.Summary(ctx, "nobody", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, empty.Balance.IsZero())
}
