package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryPrompt(t *testing.T) {
	assert.Equal(t, "Mercado, Lazer", CategoryPrompt("Mercado", "Lazer"))

	all := CategoryPrompt()
	assert.Contains(t, all, "Alimentação, Mercado")
	assert.Contains(t, all, DefaultCategory)
}
