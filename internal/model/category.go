package model

import (
	"strings"
)

// DefaultCategory is used when neither the user nor the model names one.
const DefaultCategory = "Geral"

// PredefinedCategories is the reference list offered to the model.
var PredefinedCategories = []string{
	"Alimentação", "Mercado", "Transporte", "Moradia", "Contas",
	"Saúde", "Educação", "Lazer", "Compras", "Assinaturas",
	"Viagem", "Pets", "Salário", "Freelance", "Investimentos",
	DefaultCategory,
}

// CategoryPrompt renders a category list for prompts, the predefined
// list when none is given.
func CategoryPrompt(categories ...string) string {
	if len(categories) == 0 {
		categories = PredefinedCategories
	}
	return strings.Join(categories, ", ")
}
