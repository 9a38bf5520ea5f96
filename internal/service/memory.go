package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alfredhq/alfred/internal/infrastructure/embedding"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

const (
	memoryHintLimit = 3
	memoryTimeout   = 10 * time.Second
)

// MemoryService keeps past transactions in a vector store and turns the
// closest ones into category hints for the assistant. A nil
// *MemoryService is valid and does nothing, which is how the app runs
// with the vector store disabled.
type MemoryService struct {
	embedder embedding.Provider
	repo     repository.MemoryRepo
	now      func() time.Time
	wg       sync.WaitGroup
}

func NewMemoryService(embedder embedding.Provider, repo repository.MemoryRepo) *MemoryService {
	if embedder == nil || repo == nil {
		return nil
	}
	return &MemoryService{embedder: embedder, repo: repo, now: time.Now}
}

// Hints never fails: lookup errors are logged and yield no hints.
func (m *MemoryService) Hints(ctx context.Context, userID, text string) []string {
	if m == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, memoryTimeout)
	defer cancel()

	vector, err := m.embedder.GetVector(ctx, text)
	if err != nil {
		slog.Warn("memory embed failed", "uid", userID, "err", err)
		return nil
	}
	similar, err := m.repo.SearchSimilar(ctx, userID, memoryHintLimit, vector)
	if err != nil {
		slog.Warn("memory search failed", "uid", userID, "err", err)
		return nil
	}

	hints := make([]string, 0, len(similar))
	for _, r := range similar {
		if r.Content == "" || r.Category == "" {
			continue
		}
		hints = append(hints, fmt.Sprintf("%s -> %s (%s)", r.Content, r.Category, m.timeAgo(r.Timestamp)))
	}
	return hints
}

// Remember embeds and stores tx in the background with its own timeout;
// the caller's context may already be gone when it runs.
func (m *MemoryService) Remember(tx *model.Transaction) {
	if m == nil || tx == nil {
		return
	}
	uid, id, description, category := tx.UserID, tx.ID, tx.Description, tx.Category

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), memoryTimeout)
		defer cancel()

		vector, err := m.embedder.GetVector(ctx, description)
		if err != nil {
			slog.Error("memory embed failed", "id", id, "err", err)
			return
		}
		if err := m.repo.SaveMemory(ctx, uid, id, description, category, vector); err != nil {
			slog.Error("memory save failed", "id", id, "err", err)
			return
		}
		slog.Debug("memory saved", "id", id)
	}()
}

func (m *MemoryService) Forget(id uint) {
	if m == nil {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), memoryTimeout)
		defer cancel()

		if err := m.repo.Delete(ctx, id); err != nil {
			slog.Error("memory delete failed", "id", id, "err", err)
		}
	}()
}

// Wait blocks until background writes finish.
func (m *MemoryService) Wait() {
	if m != nil {
		m.wg.Wait()
	}
}

func (m *MemoryService) timeAgo(ts int64) string {
	if ts == 0 {
		return "há muito tempo"
	}
	hours := m.now().Sub(time.Unix(ts, 0)).Hours()
	switch {
	case hours < 24:
		return "hoje"
	case hours < 48:
		return "ontem"
	default:
		return fmt.Sprintf("há %d dias", int(hours/24))
	}
}
