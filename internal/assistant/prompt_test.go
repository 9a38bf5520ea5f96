package assistant

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredhq/alfred/internal/model"
)

func TestPromptBuilder_SystemInstruction(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, 10, 19, 14, 30, 0, 0, loc)

	out, err := NewPromptBuilder(nil).SystemInstruction(now)
	require.NoError(t, err)

	assert.Contains(t, out, "2026-10-19 14:30")
	assert.Contains(t, out, "segunda-feira")
	assert.Contains(t, out, "BRT")
	assert.Contains(t, out, `"reply"`)
	assert.Contains(t, out, "ADD_TRANSACTION")
	assert.Contains(t, out, "parcelado em Nx")
	assert.Contains(t, out, `"limit": N`)
	assert.Contains(t, out, `use "Geral"`)
	assert.Contains(t, out, model.CategoryPrompt())
}

func TestPromptBuilder_CustomCategories(t *testing.T) {
	out, err := NewPromptBuilder([]string{"Café", "Livros"}).SystemInstruction(time.Now())
	require.NoError(t, err)
	assert.Contains(t, out, "Café, Livros")
	assert.NotContains(t, out, "Assinaturas")
}

func TestPromptBuilder_ContextPrompt(t *testing.T) {
	var tasks []TaskRef
	for i := 1; i <= 8; i++ {
		tasks = append(tasks, TaskRef{ID: uint(i), Title: fmt.Sprintf("tarefa %d", i), Date: "2026-10-20"})
	}
	snap := Snapshot{
		RecentTasks: tasks,
		Lists:       []ListRef{{ID: 1, Name: "Mercado"}, {ID: 2, Name: "Farmácia"}},
		History:     []string{"Uber para o trabalho -> Transporte"},
	}

	out, err := NewPromptBuilder(nil).ContextPrompt(`Gastei 50 reais no "ifood" hoje`, snap)
	require.NoError(t, err)

	assert.Contains(t, out, `{"id":5,"title":"tarefa 5","date":"2026-10-20"}`)
	assert.NotContains(t, out, "tarefa 6")
	assert.Contains(t, out, `[{"id":1,"name":"Mercado"},{"id":2,"name":"Farmácia"}]`)
	assert.Contains(t, out, "- Uber para o trabalho -> Transporte")
	assert.Contains(t, out, `Mensagem do usuário: "Gastei 50 reais no \"ifood\" hoje"`)
}

func TestPromptBuilder_EmptySnapshot(t *testing.T) {
	out, err := NewPromptBuilder(nil).ContextPrompt("Olá", Snapshot{})
	require.NoError(t, err)

	assert.Contains(t, out, "Tarefas recentes: []")
	assert.Contains(t, out, "Listas disponíveis: []")
	assert.NotContains(t, out, "Lançamentos parecidos")
}

func TestNewSnapshot_CapsTasks(t *testing.T) {
	tasks := make([]TaskRef, 9)
	snap := NewSnapshot(tasks, nil)
	assert.Len(t, snap.RecentTasks, MaxRecentTasks)
}
