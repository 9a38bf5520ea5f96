package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredhq/alfred/internal/infrastructure/llm"
)

type fakeProvider struct {
	out   string
	err   error
	panic bool

	calls  int
	system string
	prompt string
}

func (f *fakeProvider) Generate(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.system, f.prompt = system, prompt
	if f.panic {
		panic("boom")
	}
	return f.out, f.err
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
}

func TestAssistant_SendMessage(t *testing.T) {
	provider := &fakeProvider{out: "```json\n" + expenseReply + "\n```"}
	a := New(provider, nil, WithClock(fixedNow))

	reply := a.SendMessage(context.Background(), "Gastei 50 reais no ifood hoje", Snapshot{})

	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, provider.system, "2026-10-19 09:00")
	assert.Contains(t, provider.prompt, "Gastei 50 reais no ifood hoje")

	assert.NotEmpty(t, reply.Reply)
	require.Equal(t, ActionAddTransaction, reply.ActionType())
	tx := reply.Action.Transaction
	assert.Equal(t, "50", tx.Amount.Value.String())
	assert.Equal(t, "EXPENSE", tx.Type)
	assert.NotEmpty(t, tx.Category)
}

func TestAssistant_FixedReplies(t *testing.T) {
	tests := []struct {
		name     string
		provider llm.Provider
		want     string
	}{
		{"missing api key", &fakeProvider{err: llm.ErrMissingAPIKey}, ConfigErrorReply},
		{"wrapped missing api key", &fakeProvider{err: fmt.Errorf("gemini: %w", llm.ErrMissingAPIKey)}, ConfigErrorReply},
		{"no provider", nil, ConfigErrorReply},
		{"transport failure", &fakeProvider{err: errors.New("dial tcp: connection refused")}, FallbackReply},
		{"invalid json", &fakeProvider{out: `{"reply": "Anotado`}, FallbackReply},
		{"prose instead of json", &fakeProvider{out: "Claro! Anotei."}, FallbackReply},
		{"provider panics", &fakeProvider{panic: true}, FallbackReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.provider, nil, WithClock(fixedNow))

			var reply ChatReply
			require.NotPanics(t, func() {
				reply = a.SendMessage(context.Background(), "Gastei 50 reais", Snapshot{})
			})
			assert.Equal(t, tt.want, reply.Reply)
			require.NotNil(t, reply.Action)
			assert.Equal(t, ActionNone, reply.Action.Type)
			assert.Nil(t, reply.Action.Transaction)
		})
	}
}

func TestAssistant_NoIntent(t *testing.T) {
	a := New(&fakeProvider{out: `{"reply":"Muito bem, senhor. Em que posso ajudar?","action":{"type":"NONE"}}`}, nil)

	reply := a.SendMessage(context.Background(), "Olá, como você está?", Snapshot{})
	assert.NotEmpty(t, reply.Reply)
	assert.Equal(t, ActionNone, reply.ActionType())
}

func TestAssistant_MissingKeySkipsProvider(t *testing.T) {
	// a real client without key must answer without touching the network
	a := New(llm.NewOpenAIClient("", "http://127.0.0.1:1/v1", ""), nil)

	reply := a.SendMessage(context.Background(), "Olá", Snapshot{})
	assert.Equal(t, ConfigErrorReply, reply.Reply)
	assert.Equal(t, ActionNone, reply.ActionType())
}
