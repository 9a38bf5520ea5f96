package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredhq/alfred/internal/model"
)

type recordingHost struct {
	err error

	transactions []*model.Transaction
	tasks        []*model.Task
	items        []*model.ListItem
	projects     []*model.Project
}

func (h *recordingHost) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	h.transactions = append(h.transactions, tx)
	return h.err
}

func (h *recordingHost) CreateTask(_ context.Context, task *model.Task) error {
	h.tasks = append(h.tasks, task)
	return h.err
}

func (h *recordingHost) AddListItem(_ context.Context, _ string, item *model.ListItem) error {
	h.items = append(h.items, item)
	return h.err
}

func (h *recordingHost) CreateProject(_ context.Context, p *model.Project) error {
	h.projects = append(h.projects, p)
	return h.err
}

func (h *recordingHost) calls() int {
	return len(h.transactions) + len(h.tasks) + len(h.items) + len(h.projects)
}

func newTestDispatcher(h *recordingHost, now time.Time) *Dispatcher {
	d := NewDispatcher(Handlers{Transactions: h, Tasks: h, Lists: h, Projects: h}, func() time.Time { return now })
	d.loc = time.UTC
	return d
}

func mustParse(t *testing.T, raw string) *Action {
	t.Helper()
	reply, err := ParseReply(raw)
	require.NoError(t, err)
	return reply.Action
}

func TestDispatch_TransactionDefaults(t *testing.T) {
	host := &recordingHost{}
	now := time.Date(2026, 10, 19, 18, 45, 12, 0, time.UTC)
	d := newTestDispatcher(host, now)

	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_TRANSACTION","payload":{"amount":"42,50"}}}`)
	out, err := d.Dispatch(context.Background(), "u1", action, Snapshot{})
	require.NoError(t, err)

	assert.True(t, out.Dispatched)
	require.Len(t, host.transactions, 1)
	tx := host.transactions[0]
	assert.Equal(t, "u1", tx.UserID)
	assert.Equal(t, DefaultTransactionDescription, tx.Description)
	assert.Equal(t, "42.5", tx.Amount.String())
	assert.Equal(t, model.TransactionExpense, tx.Type)
	assert.Equal(t, model.DefaultCategory, tx.Category)
	assert.Equal(t, now, tx.Date)
	assert.Equal(t, model.SourceChat, tx.Source)
	assert.True(t, tx.Recurrence.IsZero())
	assert.Same(t, tx, out.Entity)
}

func TestDispatch_TransactionFromModel(t *testing.T) {
	host := &recordingHost{}
	d := newTestDispatcher(host, time.Now())

	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_TRANSACTION","payload":{"description":"Geladeira","amount":-300,"type":"expense","category":"Casa","date":"2026-10-01","recurrence":{"period":"monthly","interval":0,"limit":10}}}}`)
	_, err := d.Dispatch(context.Background(), "u1", action, Snapshot{})
	require.NoError(t, err)

	tx := host.transactions[0]
	assert.Equal(t, "Geladeira", tx.Description)
	assert.Equal(t, "300", tx.Amount.String())
	assert.Equal(t, model.TransactionExpense, tx.Type)
	assert.Equal(t, "Casa", tx.Category)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, model.PeriodMonthly, tx.Recurrence.Period)
	assert.Equal(t, 1, tx.Recurrence.Interval)
	require.NotNil(t, tx.Recurrence.Limit)
	assert.Equal(t, 10, *tx.Recurrence.Limit)
}

func TestDispatch_TransactionUnparseableDateUsesNow(t *testing.T) {
	host := &recordingHost{}
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	d := newTestDispatcher(host, now)

	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_TRANSACTION","payload":{"amount":10,"date":"ontem"}}}`)
	_, err := d.Dispatch(context.Background(), "u1", action, Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, now, host.transactions[0].Date)
}

func TestDispatch_Task(t *testing.T) {
	host := &recordingHost{}
	d := newTestDispatcher(host, time.Now())

	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_TASK","payload":{"title":" Pagar boleto ","date":"2026-10-21"}}}`)
	_, err := d.Dispatch(context.Background(), "u1", action, Snapshot{})
	require.NoError(t, err)

	task := host.tasks[0]
	assert.Equal(t, "Pagar boleto", task.Title)
	assert.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), task.Date)
	assert.Equal(t, "", task.Time)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, model.TaskPending, task.Status)
}

func TestDispatch_TaskWithoutDateIsNotInvented(t *testing.T) {
	host := &recordingHost{err: errors.New("date is required")}
	d := newTestDispatcher(host, time.Now())

	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_TASK","payload":{"title":"Ligar para o banco","priority":"HIGH"}}}`)
	out, err := d.Dispatch(context.Background(), "u1", action, Snapshot{})

	require.Error(t, err)
	assert.False(t, out.Dispatched)
	require.Len(t, host.tasks, 1)
	assert.True(t, host.tasks[0].Date.IsZero())
	assert.Equal(t, model.PriorityHigh, host.tasks[0].Priority)
}

func TestDispatch_ListItem(t *testing.T) {
	snap := Snapshot{Lists: []ListRef{{ID: 3, Name: "Mercado"}, {ID: 4, Name: "Farmácia"}}}

	t.Run("known list", func(t *testing.T) {
		host := &recordingHost{}
		action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_LIST_ITEM","payload":{"listId":3,"name":"Leite"}}}`)

		out, err := newTestDispatcher(host, time.Now()).Dispatch(context.Background(), "u1", action, snap)
		require.NoError(t, err)
		assert.True(t, out.Dispatched)
		require.Len(t, host.items, 1)
		assert.EqualValues(t, 3, host.items[0].ListID)
		assert.Equal(t, "Leite", host.items[0].Name)
	})

	t.Run("absent list asks which one", func(t *testing.T) {
		host := &recordingHost{}
		action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_LIST_ITEM","payload":{"name":"Leite"}}}`)

		out, err := newTestDispatcher(host, time.Now()).Dispatch(context.Background(), "u1", action, snap)
		require.NoError(t, err)
		assert.False(t, out.Dispatched)
		assert.Contains(t, out.Clarification, "Leite")
		assert.Contains(t, out.Clarification, "Mercado, Farmácia")
		assert.Zero(t, host.calls())
	})

	t.Run("unknown list asks which one", func(t *testing.T) {
		host := &recordingHost{}
		action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_LIST_ITEM","payload":{"listId":99,"name":"Leite"}}}`)

		out, err := newTestDispatcher(host, time.Now()).Dispatch(context.Background(), "u1", action, snap)
		require.NoError(t, err)
		assert.NotEmpty(t, out.Clarification)
		assert.Zero(t, host.calls())
	})

	t.Run("no lists at all", func(t *testing.T) {
		host := &recordingHost{}
		action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_LIST_ITEM","payload":{"listId":1,"name":"Pão"}}}`)

		out, err := newTestDispatcher(host, time.Now()).Dispatch(context.Background(), "u1", action, Snapshot{})
		require.NoError(t, err)
		assert.Contains(t, out.Clarification, "nenhuma lista")
	})
}

func TestDispatch_Project(t *testing.T) {
	host := &recordingHost{}
	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_PROJECT","payload":{"title":"Reserva de emergência","targetAmount":20000,"deadline":"2027-06-30"}}}`)

	out, err := newTestDispatcher(host, time.Now()).Dispatch(context.Background(), "u1", action, Snapshot{})
	require.NoError(t, err)
	assert.True(t, out.Dispatched)

	p := host.projects[0]
	assert.Equal(t, "Reserva de emergência", p.Title)
	assert.Equal(t, "20000", p.TargetAmount.String())
	assert.True(t, p.SavedAmount.IsZero())
	assert.Equal(t, model.ProjectGoal, p.Category)
	require.NotNil(t, p.Deadline)
	assert.Equal(t, 2027, p.Deadline.Year())
}

func TestDispatch_NoneAndNil(t *testing.T) {
	host := &recordingHost{}
	d := newTestDispatcher(host, time.Now())

	out, err := d.Dispatch(context.Background(), "u1", nil, Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, out.Type)

	out, err = d.Dispatch(context.Background(), "u1", &Action{Type: ActionNone}, Snapshot{})
	require.NoError(t, err)
	assert.False(t, out.Dispatched)
	assert.Zero(t, host.calls())
}

func TestDispatch_MissingHandler(t *testing.T) {
	d := NewDispatcher(Handlers{}, nil)
	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_PROJECT","payload":{"title":"Carro"}}}`)

	_, err := d.Dispatch(context.Background(), "u1", action, Snapshot{})
	assert.ErrorIs(t, err, ErrNoHandler)
}

func TestDispatch_HostErrorIsWrapped(t *testing.T) {
	hostErr := errors.New("db down")
	host := &recordingHost{err: hostErr}
	action := mustParse(t, `{"reply":"ok","action":{"type":"ADD_TRANSACTION","payload":{"amount":5}}}`)

	out, err := newTestDispatcher(host, time.Now()).Dispatch(context.Background(), "u1", action, Snapshot{})
	assert.ErrorIs(t, err, hostErr)
	assert.False(t, out.Dispatched)
	assert.Nil(t, out.Entity)
	// exactly one call, no retry
	assert.Equal(t, 1, host.calls())
}
