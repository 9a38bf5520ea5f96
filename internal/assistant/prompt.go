package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/alfredhq/alfred/internal/model"
)

const systemInstructionTemplate = `Você é Alfred, o mordomo financeiro e assistente pessoal do usuário.
Responda sempre em português do Brasil, com cortesia e em no máximo duas frases.

Data e hora atuais: {{.Now}} ({{.Weekday}}, fuso {{.Zone}}).

## Contrato de saída
Responda SOMENTE com um único objeto JSON, sem markdown, sem crases e sem texto fora do JSON:
{"reply": "confirmação curta para o usuário", "action": {"type": "...", "payload": {...}}}
O campo "action" é opcional. Valores aceitos em action.type:
- "ADD_TRANSACTION": payload {"description": string, "amount": number, "type": "INCOME" | "EXPENSE" | "INVESTMENT", "category": string, "date": "YYYY-MM-DD", "recurrence": {"period": "DAILY" | "WEEKLY" | "MONTHLY" | "YEARLY", "interval": number, "limit": number | null}}
- "ADD_TASK": payload {"title": string, "date": "YYYY-MM-DD", "time": "HH:MM", "priority": "LOW" | "MEDIUM" | "HIGH", "recurrence": {...}}
- "ADD_LIST_ITEM": payload {"listId": number | null, "name": string}
- "ADD_PROJECT": payload {"title": string, "description": string, "targetAmount": number, "category": "GOAL" | "RESERVE" | "ASSET", "deadline": "YYYY-MM-DD"}
- "NONE": conversa sem ação; omita o payload.

## Categorias
Escolha preferencialmente uma destas categorias: {{.Categories}}.
- ifood, restaurante, lanchonete, padaria, café -> Alimentação
- supermercado, feira, atacadão -> Mercado
- uber, 99, táxi, gasolina, combustível, ônibus, metrô, estacionamento -> Transporte
- aluguel, condomínio, IPTU -> Moradia
- luz, energia, água, internet, celular, gás -> Contas
- farmácia, médico, dentista, exame, plano de saúde -> Saúde
- netflix, spotify, youtube premium, prime video -> Assinaturas
- curso, livro, faculdade, escola -> Educação
- cinema, show, bar, viagem de lazer -> Lazer
- salário, pagamento do trabalho -> Salário (type INCOME)
- ações, tesouro direto, CDB, fundos, cripto -> Investimentos (type INVESTMENT)
Se nenhuma regra se aplicar, use "{{.DefaultCategory}}". Gastos são EXPENSE e recebimentos são INCOME.

## Recorrência
- "todo dia", "diariamente" -> {"period": "DAILY", "interval": 1}
- "toda semana", "semanalmente" -> {"period": "WEEKLY", "interval": 1}
- "a cada 15 dias", "quinzenalmente" -> {"period": "DAILY", "interval": 15}
- "todo mês", "mensalmente", "mensal" -> {"period": "MONTHLY", "interval": 1}
- "todo ano", "anualmente" -> {"period": "YEARLY", "interval": 1}
- "parcelado em Nx", "em N parcelas" -> {"period": "MONTHLY", "interval": 1, "limit": N}; amount é o valor de cada parcela (divida o total por N quando o usuário informar o total).
Sem recorrência, omita "recurrence".

## Datas
Converta expressões relativas ("hoje", "amanhã", "ontem", "próxima sexta", "daqui a 2 anos") em datas absolutas YYYY-MM-DD usando a data atual acima. Nunca devolva datas relativas.
Para tarefas, se o usuário não disser quando, pergunte no reply e use type "NONE".

## Listas
Use o "id" de uma das listas disponíveis no contexto. Se o usuário não indicar a lista, ou ela não existir, use "listId": null.

## Regras gerais
- Valores monetários como número, sem símbolo de moeda e com ponto decimal.
- Se não houver intenção clara de ação, use type "NONE" e responda normalmente.
`

const contextPromptTemplate = `Tarefas recentes: {{.Tasks}}
Listas disponíveis: {{.Lists}}
{{- if .History}}
Lançamentos parecidos do usuário (mantenha a mesma categoria quando fizer sentido):
{{- range .History}}
- {{.}}
{{- end}}
{{- end}}

Mensagem do usuário: {{.Message}}
`

var (
	systemTmpl  = template.Must(template.New("system").Parse(systemInstructionTemplate))
	contextTmpl = template.Must(template.New("context").Parse(contextPromptTemplate))
)

var weekdaysPT = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}

// PromptBuilder renders the two text blocks sent to the model. It has no
// side effects.
type PromptBuilder struct {
	categories      []string
	defaultCategory string
}

func NewPromptBuilder(categories []string) *PromptBuilder {
	if len(categories) == 0 {
		categories = model.PredefinedCategories
	}
	return &PromptBuilder{categories: categories, defaultCategory: model.DefaultCategory}
}

// SystemInstruction renders the static rules anchored at now.
func (b *PromptBuilder) SystemInstruction(now time.Time) (string, error) {
	zone, _ := now.Zone()
	data := struct {
		Now             string
		Weekday         string
		Zone            string
		Categories      string
		DefaultCategory string
	}{
		Now:             now.Format("2006-01-02 15:04"),
		Weekday:         weekdaysPT[now.Weekday()],
		Zone:            zone,
		Categories:      model.CategoryPrompt(b.categories...),
		DefaultCategory: b.defaultCategory,
	}

	var buf bytes.Buffer
	if err := systemTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render system instruction: %w", err)
	}
	return buf.String(), nil
}

// ContextPrompt renders the per-turn context block and the user's message.
func (b *PromptBuilder) ContextPrompt(message string, snap Snapshot) (string, error) {
	tasks := capTasks(snap.RecentTasks)
	if tasks == nil {
		tasks = []TaskRef{}
	}
	lists := snap.Lists
	if lists == nil {
		lists = []ListRef{}
	}
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	listsJSON, err := json.Marshal(lists)
	if err != nil {
		return "", fmt.Errorf("encode lists: %w", err)
	}
	// the message goes in as a JSON string literal
	msgJSON, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}

	data := struct {
		Tasks   string
		Lists   string
		History []string
		Message string
	}{string(tasksJSON), string(listsJSON), snap.History, string(msgJSON)}

	var buf bytes.Buffer
	if err := contextTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render context prompt: %w", err)
	}
	return buf.String(), nil
}
