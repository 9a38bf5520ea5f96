package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alfredhq/alfred/internal/model"
)

// DefaultTransactionDescription labels transactions the model left unnamed.
const DefaultTransactionDescription = "Lançamento via chat"

// ErrNoHandler is returned when an action has no host handler wired.
var ErrNoHandler = errors.New("assistant: no handler for action")

// Host create handlers. Each one validates its entity on its own; the
// dispatcher only fills defaults.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
}

type TaskCreator interface {
	CreateTask(ctx context.Context, task *model.Task) error
}

type ListItemAdder interface {
	AddListItem(ctx context.Context, userID string, item *model.ListItem) error
}

type ProjectCreator interface {
	CreateProject(ctx context.Context, p *model.Project) error
}

type Handlers struct {
	Transactions TransactionCreator
	Tasks        TaskCreator
	Lists        ListItemAdder
	Projects     ProjectCreator
}

// Outcome reports what a dispatch did. Clarification is set, and nothing
// dispatched, when the action cannot be routed without asking the user.
type Outcome struct {
	Type          ActionType `json:"type"`
	Dispatched    bool       `json:"dispatched"`
	Entity        any        `json:"entity,omitempty"`
	Clarification string     `json:"clarification,omitempty"`
}

type Dispatcher struct {
	handlers Handlers
	now      func() time.Time
	loc      *time.Location
}

func NewDispatcher(h Handlers, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{handlers: h, now: now, loc: time.Local}
}

// Dispatch normalizes the action's draft and makes at most one host call.
// Host errors are returned unchanged in meaning (wrapped); nothing is
// rolled back.
func (d *Dispatcher) Dispatch(ctx context.Context, userID string, action *Action, snap Snapshot) (Outcome, error) {
	if action == nil || action.Type == ActionNone {
		return Outcome{Type: ActionNone}, nil
	}
	out := Outcome{Type: action.Type}

	var err error
	switch action.Type {
	case ActionAddTransaction:
		if d.handlers.Transactions == nil {
			return out, fmt.Errorf("%w: %s", ErrNoHandler, action.Type)
		}
		tx := d.transactionFrom(userID, action.Transaction)
		if err = d.handlers.Transactions.CreateTransaction(ctx, tx); err == nil {
			out.Entity = tx
		}

	case ActionAddTask:
		if d.handlers.Tasks == nil {
			return out, fmt.Errorf("%w: %s", ErrNoHandler, action.Type)
		}
		task := d.taskFrom(userID, action.Task)
		if err = d.handlers.Tasks.CreateTask(ctx, task); err == nil {
			out.Entity = task
		}

	case ActionAddListItem:
		if d.handlers.Lists == nil {
			return out, fmt.Errorf("%w: %s", ErrNoHandler, action.Type)
		}
		item, question := listItemFrom(action.ListItem, snap)
		if question != "" {
			out.Clarification = question
			return out, nil
		}
		if err = d.handlers.Lists.AddListItem(ctx, userID, item); err == nil {
			out.Entity = item
		}

	case ActionAddProject:
		if d.handlers.Projects == nil {
			return out, fmt.Errorf("%w: %s", ErrNoHandler, action.Type)
		}
		p := d.projectFrom(userID, action.Project)
		if err = d.handlers.Projects.CreateProject(ctx, p); err == nil {
			out.Entity = p
		}

	default:
		return Outcome{Type: ActionNone}, nil
	}

	if err != nil {
		return out, fmt.Errorf("dispatch %s: %w", action.Type, err)
	}
	out.Dispatched = true
	return out, nil
}

func (d *Dispatcher) transactionFrom(userID string, dr *TransactionDraft) *model.Transaction {
	if dr == nil {
		dr = &TransactionDraft{}
	}

	description := strings.TrimSpace(dr.Description)
	if description == "" {
		description = DefaultTransactionDescription
	}
	amount := decimal.Zero
	if dr.Amount.Valid {
		amount = dr.Amount.Value.Abs()
	}
	typ := model.TransactionType(strings.ToUpper(strings.TrimSpace(dr.Type)))
	if typ == "" {
		typ = model.TransactionExpense
	}
	category := strings.TrimSpace(dr.Category)
	if category == "" {
		category = model.DefaultCategory
	}
	date, ok := d.parseDate(dr.Date)
	if !ok {
		date = d.now()
	}

	return &model.Transaction{
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Date:        date,
		Recurrence:  recurrenceFrom(dr.Recurrence),
		Source:      model.SourceChat,
	}
}

// taskFrom never invents a date: a missing one stays zero and is rejected
// by the task handler.
func (d *Dispatcher) taskFrom(userID string, dr *TaskDraft) *model.Task {
	if dr == nil {
		dr = &TaskDraft{}
	}

	date, _ := d.parseDate(dr.Date)
	priority := model.TaskPriority(strings.ToUpper(strings.TrimSpace(dr.Priority)))
	if priority == "" {
		priority = model.PriorityMedium
	}

	return &model.Task{
		UserID:     userID,
		Title:      strings.TrimSpace(dr.Title),
		Date:       date,
		Time:       strings.TrimSpace(dr.Time),
		Priority:   priority,
		Status:     model.TaskPending,
		Recurrence: recurrenceFrom(dr.Recurrence),
		Source:     model.SourceChat,
	}
}

// listItemFrom resolves the target list against the snapshot. An absent or
// unknown list id yields a question for the user instead of an item.
func listItemFrom(dr *ListItemDraft, snap Snapshot) (*model.ListItem, string) {
	if dr == nil {
		dr = &ListItemDraft{}
	}
	name := strings.TrimSpace(dr.Name)

	if dr.ListID.Set {
		if list, ok := snap.FindList(dr.ListID.Value); ok {
			return &model.ListItem{ListID: list.ID, Name: name, Source: model.SourceChat}, ""
		}
	}
	return nil, whichListQuestion(name, snap.Lists)
}

func whichListQuestion(item string, lists []ListRef) string {
	if len(lists) == 0 {
		return fmt.Sprintf("Você ainda não tem nenhuma lista, senhor. Crie uma lista e depois me peça para adicionar \"%s\".", item)
	}
	names := make([]string, 0, len(lists))
	for _, l := range lists {
		names = append(names, l.Name)
	}
	return fmt.Sprintf("Em qual lista devo adicionar \"%s\"? Listas disponíveis: %s.", item, strings.Join(names, ", "))
}

func (d *Dispatcher) projectFrom(userID string, dr *ProjectDraft) *model.Project {
	if dr == nil {
		dr = &ProjectDraft{}
	}

	target := decimal.Zero
	if dr.TargetAmount.Valid {
		target = dr.TargetAmount.Value.Abs()
	}
	category := model.ProjectCategory(strings.ToUpper(strings.TrimSpace(dr.Category)))
	if category == "" {
		category = model.ProjectGoal
	}
	var deadline *time.Time
	if t, ok := d.parseDate(dr.Deadline); ok {
		deadline = &t
	}

	return &model.Project{
		UserID:       userID,
		Title:        strings.TrimSpace(dr.Title),
		Description:  strings.TrimSpace(dr.Description),
		TargetAmount: target,
		SavedAmount:  decimal.Zero,
		Category:     category,
		Deadline:     deadline,
		Source:       model.SourceChat,
	}
}

func recurrenceFrom(dr *RecurrenceDraft) model.Recurrence {
	if dr == nil || strings.TrimSpace(dr.Period) == "" {
		return model.Recurrence{}
	}
	interval := dr.Interval
	if interval < 1 {
		interval = 1
	}
	return model.Recurrence{
		Period:   model.RecurrencePeriod(strings.ToUpper(strings.TrimSpace(dr.Period))),
		Interval: interval,
		Limit:    dr.Limit,
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func (d *Dispatcher) parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, d.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
