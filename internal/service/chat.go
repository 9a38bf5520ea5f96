package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/alfredhq/alfred/internal/assistant"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

const defaultHistoryLimit = 50

// ChatResult is one answered chat turn.
type ChatResult struct {
	Reply   string            `json:"reply"`
	Action  *assistant.Action `json:"action,omitempty"`
	Outcome assistant.Outcome `json:"outcome"`
}

type ChatService struct {
	assistant  *assistant.Assistant
	dispatcher *assistant.Dispatcher
	tasks      *TaskService
	lists      *ListService
	chats      repository.ChatRepo
	memory     *MemoryService

	mu   sync.Mutex
	busy map[string]struct{}
}

func NewChatService(
	a *assistant.Assistant,
	d *assistant.Dispatcher,
	tasks *TaskService,
	lists *ListService,
	chats repository.ChatRepo,
	memory *MemoryService,
) *ChatService {
	return &ChatService{
		assistant:  a,
		dispatcher: d,
		tasks:      tasks,
		lists:      lists,
		chats:      chats,
		memory:     memory,
		busy:       make(map[string]struct{}),
	}
}

// Send runs one chat turn for the user. Only one turn per user runs at a
// time; a concurrent call gets ErrChatBusy. Dispatch failures are logged
// and reported through the outcome, never through the error.
func (s *ChatService) Send(ctx context.Context, userID, message string) (*ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, invalidf("message is empty")
	}
	if !s.acquire(userID) {
		return nil, ErrChatBusy
	}
	defer s.release(userID)

	snap, err := s.snapshot(ctx, userID, message)
	if err != nil {
		return nil, err
	}

	reply := s.assistant.SendMessage(ctx, message, snap)
	result := &ChatResult{Reply: reply.Reply, Action: reply.Action}

	outcome, err := s.dispatcher.Dispatch(ctx, userID, reply.Action, snap)
	result.Outcome = outcome
	switch {
	case err != nil:
		slog.Error("chat action dispatch failed", "uid", userID, "action", outcome.Type, "err", err)
	case outcome.Clarification != "":
		result.Reply = outcome.Clarification
	case outcome.Dispatched:
		slog.Info("chat action dispatched", "uid", userID, "action", outcome.Type)
		if tx, ok := outcome.Entity.(*model.Transaction); ok {
			s.memory.Remember(tx)
		}
	}

	err = s.chats.Append(ctx,
		&model.ChatMessage{UserID: userID, Role: model.RoleUser, Content: message},
		&model.ChatMessage{UserID: userID, Role: model.RoleAssistant, Content: result.Reply, ActionType: string(reply.ActionType())},
	)
	if err != nil {
		slog.Error("chat transcript append failed", "uid", userID, "err", err)
	}
	return result, nil
}

func (s *ChatService) Messages(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}
	return s.chats.History(ctx, userID, limit)
}

func (s *ChatService) snapshot(ctx context.Context, userID, message string) (assistant.Snapshot, error) {
	tasks, err := s.tasks.RecentRefs(ctx, userID, assistant.MaxRecentTasks)
	if err != nil {
		return assistant.Snapshot{}, fmt.Errorf("recent tasks: %w", err)
	}
	lists, err := s.lists.ListRefs(ctx, userID)
	if err != nil {
		return assistant.Snapshot{}, fmt.Errorf("lists: %w", err)
	}

	snap := assistant.NewSnapshot(tasks, lists)
	snap.History = s.memory.Hints(ctx, userID, message)
	return snap, nil
}

func (s *ChatService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.busy[userID]; ok {
		return false
	}
	s.busy[userID] = struct{}{}
	return true
}

func (s *ChatService) release(userID string) {
	s.mu.Lock()
	delete(s.busy, userID)
	s.mu.Unlock()
}
