package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

// RecurrenceReport counts the occurrences created by one pass.
type RecurrenceReport struct {
	Transactions int `json:"transactions"`
	Tasks        int `json:"tasks"`
}

// RecurrenceService materializes due occurrences of recurring series. The
// head of a series is its first occurrence; each pass creates every
// occurrence dated up to now that is still within the repeat limit.
type RecurrenceService struct {
	transactions repository.TransactionRepo
	tasks        repository.TaskRepo
}

func NewRecurrenceService(transactions repository.TransactionRepo, tasks repository.TaskRepo) *RecurrenceService {
	return &RecurrenceService{transactions: transactions, tasks: tasks}
}

func (s *RecurrenceService) Materialize(ctx context.Context, now time.Time) (RecurrenceReport, error) {
	var report RecurrenceReport

	txHeads, err := s.transactions.SeriesHeads(ctx)
	if err != nil {
		return report, fmt.Errorf("transaction series: %w", err)
	}
	for i := range txHeads {
		n, err := s.materializeTransaction(ctx, &txHeads[i], now)
		report.Transactions += n
		if err != nil {
			return report, err
		}
	}

	taskHeads, err := s.tasks.SeriesHeads(ctx)
	if err != nil {
		return report, fmt.Errorf("task series: %w", err)
	}
	for i := range taskHeads {
		n, err := s.materializeTask(ctx, &taskHeads[i], now)
		report.Tasks += n
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (s *RecurrenceService) materializeTransaction(ctx context.Context, head *model.Transaction, now time.Time) (int, error) {
	last, err := s.transactions.LastOccurrence(ctx, head.SeriesID)
	if err != nil {
		return 0, err
	}

	created := 0
	for n := last + 1; head.Recurrence.Allows(n); n++ {
		date := head.Recurrence.Occurrence(head.Date, n)
		if date.After(now) {
			break
		}
		occ := &model.Transaction{
			UserID:      head.UserID,
			Description: head.Description,
			Amount:      head.Amount,
			Type:        head.Type,
			Category:    head.Category,
			Date:        date,
			SeriesID:    head.SeriesID,
			Occurrence:  n,
			Source:      model.SourceRecurrence,
		}
		if err := s.transactions.Create(ctx, occ); err != nil {
			return created, fmt.Errorf("series %s occurrence %d: %w", head.SeriesID, n, err)
		}
		created++
	}
	return created, nil
}

func (s *RecurrenceService) materializeTask(ctx context.Context, head *model.Task, now time.Time) (int, error) {
	last, err := s.tasks.LastOccurrence(ctx, head.SeriesID)
	if err != nil {
		return 0, err
	}

	created := 0
	for n := last + 1; head.Recurrence.Allows(n); n++ {
		date := head.Recurrence.Occurrence(head.Date, n)
		if date.After(now) {
			break
		}
		occ := &model.Task{
			UserID:     head.UserID,
			Title:      head.Title,
			Date:       date,
			Time:       head.Time,
			Priority:   head.Priority,
			Status:     model.TaskPending,
			SeriesID:   head.SeriesID,
			Occurrence: n,
			Source:     model.SourceRecurrence,
		}
		if err := s.tasks.Create(ctx, occ); err != nil {
			return created, fmt.Errorf("series %s occurrence %d: %w", head.SeriesID, n, err)
		}
		created++
	}
	return created, nil
}

// Schedule registers Materialize on c with the given cron spec.
func (s *RecurrenceService) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		report, err := s.Materialize(ctx, time.Now())
		if err != nil {
			slog.Error("recurrence pass failed", "err", err, "transactions", report.Transactions, "tasks", report.Tasks)
			return
		}
		slog.Info("recurrence pass done", "transactions", report.Transactions, "tasks", report.Tasks)
	})
}
