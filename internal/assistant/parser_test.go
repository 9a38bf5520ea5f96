package assistant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expenseReply = `{"reply":"Anotado, senhor.","action":{"type":"ADD_TRANSACTION","payload":{"description":"iFood","amount":50,"type":"EXPENSE","category":"Alimentação","date":"2026-10-19"}}}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"space before tag", "``` json\n{\"a\":1}\n```", `{"a":1}`},
		{"space before upper tag", "```  JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"upper case fence", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json {\"a\":1} ```  \n", `{"a":1}`},
		{"only trailing fence", "{\"a\":1}\n```", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.raw))
		})
	}
}

func TestParseReply_FencedEqualsPlain(t *testing.T) {
	plain, err := ParseReply(expenseReply)
	require.NoError(t, err)

	for _, raw := range []string{
		"```json\n" + expenseReply + "\n```",
		"```Json" + expenseReply + "```",
		"```\n" + expenseReply + "\n```\n",
	} {
		fenced, err := ParseReply(raw)
		require.NoError(t, err)
		assert.Equal(t, plain, fenced)
	}
}

func TestParseReply_Transaction(t *testing.T) {
	reply, err := ParseReply(expenseReply)
	require.NoError(t, err)

	assert.Equal(t, "Anotado, senhor.", reply.Reply)
	require.NotNil(t, reply.Action)
	assert.Equal(t, ActionAddTransaction, reply.Action.Type)
	require.NotNil(t, reply.Action.Transaction)
	assert.Nil(t, reply.Action.Task)

	tx := reply.Action.Transaction
	assert.True(t, tx.Amount.Valid)
	assert.Equal(t, "50", tx.Amount.Value.String())
	assert.Equal(t, "EXPENSE", tx.Type)
	assert.NotEmpty(t, tx.Category)
}

func TestParseReply_Variants(t *testing.T) {
	t.Run("task", func(t *testing.T) {
		reply, err := ParseReply(`{"reply":"ok","action":{"type":"ADD_TASK","payload":{"title":"Dentista","date":"2026-10-20","time":"14:00","priority":"HIGH","recurrence":{"period":"WEEKLY","interval":1}}}}`)
		require.NoError(t, err)
		require.NotNil(t, reply.Action.Task)
		assert.Equal(t, "Dentista", reply.Action.Task.Title)
		require.NotNil(t, reply.Action.Task.Recurrence)
		assert.Equal(t, "WEEKLY", reply.Action.Task.Recurrence.Period)
	})

	t.Run("list item with string id", func(t *testing.T) {
		reply, err := ParseReply(`{"reply":"ok","action":{"type":"ADD_LIST_ITEM","payload":{"listId":"7","name":"Leite"}}}`)
		require.NoError(t, err)
		require.NotNil(t, reply.Action.ListItem)
		assert.True(t, reply.Action.ListItem.ListID.Set)
		assert.EqualValues(t, 7, reply.Action.ListItem.ListID.Value)
	})

	t.Run("list item without list", func(t *testing.T) {
		reply, err := ParseReply(`{"reply":"ok","action":{"type":"ADD_LIST_ITEM","payload":{"listId":null,"name":"Leite"}}}`)
		require.NoError(t, err)
		assert.False(t, reply.Action.ListItem.ListID.Set)
	})

	t.Run("project with formatted amount", func(t *testing.T) {
		reply, err := ParseReply(`{"reply":"ok","action":{"type":"add_project","payload":{"title":"Viagem","targetAmount":"R$ 12.500,00","category":"GOAL","deadline":"2027-12-01"}}}`)
		require.NoError(t, err)
		assert.Equal(t, ActionAddProject, reply.Action.Type)
		assert.Equal(t, "12500", reply.Action.Project.TargetAmount.Value.String())
	})

	t.Run("missing action becomes NONE", func(t *testing.T) {
		reply, err := ParseReply(`{"reply":"Olá, senhor!"}`)
		require.NoError(t, err)
		assert.Equal(t, ActionNone, reply.ActionType())
	})

	t.Run("unknown type becomes NONE", func(t *testing.T) {
		reply, err := ParseReply(`{"reply":"ok","action":{"type":"DELETE_EVERYTHING","payload":{}}}`)
		require.NoError(t, err)
		assert.Equal(t, ActionNone, reply.ActionType())
		assert.Equal(t, "DELETE_EVERYTHING", reply.Action.unknownType)
	})
}

func TestParseReply_Rejects(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":              "   ",
		"not json":           "Claro, senhor! Anotei sua despesa.",
		"truncated":          `{"reply":"ok","action":{"type":"ADD_TASK"`,
		"array":              `[{"reply":"ok"}]`,
		"missing reply":      `{"action":{"type":"NONE"}}`,
		"blank reply":        `{"reply":"  "}`,
		"payload wrong type": `{"reply":"ok","action":{"type":"ADD_TASK","payload":"amanhã"}}`,
		"missing payload":    `{"reply":"ok","action":{"type":"ADD_TRANSACTION"}}`,
		"trailing text":      `{"reply":"ok"} espero ter ajudado`,
	} {
		t.Run(name, func(t *testing.T) {
			reply, err := ParseReply(raw)
			assert.ErrorIs(t, err, ErrMalformedReply)
			assert.Nil(t, reply.Action)
		})
	}
}

func TestAction_MarshalJSON(t *testing.T) {
	reply, err := ParseReply(expenseReply)
	require.NoError(t, err)

	out, err := json.Marshal(reply)
	require.NoError(t, err)

	var shape struct {
		Reply  string `json:"reply"`
		Action struct {
			Type    string         `json:"type"`
			Payload map[string]any `json:"payload"`
		} `json:"action"`
	}
	require.NoError(t, json.Unmarshal(out, &shape))
	assert.Equal(t, "ADD_TRANSACTION", shape.Action.Type)
	assert.Equal(t, float64(50), shape.Action.Payload["amount"])
	assert.Equal(t, "EXPENSE", shape.Action.Payload["type"])
}
