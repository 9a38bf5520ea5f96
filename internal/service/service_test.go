package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alfredhq/alfred/internal/config"
	"github.com/alfredhq/alfred/internal/infrastructure/database"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewConnection(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"}, "")
	require.NoError(t, err)
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func expense(userID, description string, amount int64) *model.Transaction {
	return &model.Transaction{
		UserID:      userID,
		Description: description,
		Amount:      decimal.NewFromInt(amount),
		Type:        model.TransactionExpense,
		Category:    model.DefaultCategory,
		Date:        date(2026, time.October, 10),
	}
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) GetVector(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{float32(len(text)), 1}, nil
}

type savedMemory struct {
	UserID      string
	ID          uint
	Description string
	Category    string
}

type fakeMemoryRepo struct {
	mu      sync.Mutex
	saved   []savedMemory
	deleted []uint
	results []repository.MemoryResult
	err     error
}

func (f *fakeMemoryRepo) SaveMemory(_ context.Context, uid string, id uint, description, category string, _ []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, savedMemory{uid, id, description, category})
	return f.err
}

func (f *fakeMemoryRepo) SearchSimilar(context.Context, string, int, []float32) ([]repository.MemoryResult, error) {
	return f.results, f.err
}

func (f *fakeMemoryRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.err
}
