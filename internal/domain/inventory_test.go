package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateItems(t *testing.T) {
	items, ok := TemplateItems("Bedsitter")
	assert.True(t, ok)
	assert.Len(t, items, 4)
	assert.Equal(t, "Bed", items[0].Text)
	for _, it := range items {
		assert.False(t, it.Done)
	}

	items, ok = TemplateItems("2BR")
	assert.True(t, ok)
	assert.Len(t, items, 6)

	_, ok = TemplateItems("Mansion")
	assert.False(t, ok)
}

func TestInventoryProgress(t *testing.T) {
	completed, percent := InventoryProgress(nil)
	assert.Equal(t, 0, completed)
	assert.Equal(t, 0, percent)

	items := []InventoryItem{
		{Text: "Bed", Done: true},
		{Text: "Sofa"},
		{Text: "Boxes"},
	}
	completed, percent = InventoryProgress(items)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 33, percent)

	items[1].Done = true
	completed, percent = InventoryProgress(items)
	assert.Equal(t, 2, completed)
	assert.Equal(t, 67, percent)

	items[2].Done = true
	completed, percent = InventoryProgress(items)
	assert.Equal(t, 3, completed)
	assert.Equal(t, 100, percent)
}
