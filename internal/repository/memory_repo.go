package repository

import "context"

// MemoryResult is a past transaction similar to a query.
type MemoryResult struct {
	Content   string
	Category  string
	Timestamp int64
	Score     float32
}

// MemoryRepo stores transaction descriptions as vectors so later chat
// turns can be given category hints.
type MemoryRepo interface {
	SaveMemory(ctx context.Context, uid string, transactionID uint, description, category string, vector []float32) error
	SearchSimilar(ctx context.Context, uid string, limit int, queryVector []float32) ([]MemoryResult, error)
	Delete(ctx context.Context, transactionID uint) error
}
