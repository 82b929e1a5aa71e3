package domain

// InventoryItem is one line on a move's packing checklist.
type InventoryItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// InventoryTemplates are the quick-start checklists offered per home size.
// Applying one replaces the whole checklist with the template's items, all
// unchecked.
var InventoryTemplates = map[string][]string{
	"Bedsitter": {"Bed", "Wardrobe", "Table", "Chairs"},
	"Studio":    {"Bed", "Sofa", "Wardrobe", "Dining Table", "Boxes"},
	"1BR":       {"Bed", "Sofa", "Dining Table", "Fridge", "Washing Machine"},
	"2BR":       {"2 Beds", "Sofa", "Dining Table", "Fridge", "Washing Machine", "Boxes"},
}

// TemplateItems builds the fresh checklist for a named template.
func TemplateItems(name string) ([]InventoryItem, bool) {
	texts, ok := InventoryTemplates[name]
	if !ok {
		return nil, false
	}
	items := make([]InventoryItem, 0, len(texts))
	for _, t := range texts {
		items = append(items, InventoryItem{Text: t})
	}
	return items, true
}

// InventoryProgress reports how many items are checked off and the rounded
// completion percentage shown on the checklist header.
func InventoryProgress(items []InventoryItem) (completed, percent int) {
	for _, it := range items {
		if it.Done {
			completed++
		}
	}
	if len(items) > 0 {
		percent = (completed*100 + len(items)/2) / len(items)
	}
	return completed, percent
}
