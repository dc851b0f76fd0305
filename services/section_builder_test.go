package services

import (
	"testing"

	"Mainu/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(original, section, category string) models.MenuItemPayload {
	p := models.MenuItemPayload{OriginalName: original, TranslatedName: original}
	if section != "" {
		p.Section = models.OptionalText{Value: section, Valid: true}
	}
	if category != "" {
		p.Category = models.OptionalText{Value: category, Valid: true}
	}
	return p
}

func TestBuildSections_FirstSeenOrder(t *testing.T) {
	items := []models.MenuItemPayload{
		item("Tiramisu", "Dolci", ""),
		item("Garlic Bread", "Antipasti", ""),
		item("Panna Cotta", "Dolci", ""),
		item("Espresso", "", "Drinks"),
		item("Bread Basket", "", ""),
	}

	sections := BuildSections(items)
	require.Len(t, sections, 4)

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
		assert.NotEqual(t, uuid.Nil, s.ID)
	}
	assert.Equal(t, []string{"Dolci", "Antipasti", "Drinks", "Menu"}, titles)

	require.Len(t, sections[0].Dishes, 2)
	assert.Equal(t, "Tiramisu", sections[0].Dishes[0].OriginalName)
	assert.Equal(t, "Panna Cotta", sections[0].Dishes[1].OriginalName)
}

func TestBuildSections_PreservesEveryDish(t *testing.T) {
	var items []models.MenuItemPayload
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		items = append(items, item(name, []string{"X", "Y"}[len(items)%2], ""))
	}

	total := 0
	for _, s := range BuildSections(items) {
		total += len(s.Dishes)
	}
	assert.Equal(t, len(items), total)
}

func TestBuildTemplate_EmptyMenu(t *testing.T) {
	_, err := buildTemplate(uuid.New(), `{"items":[]}`)
	assert.ErrorIs(t, err, ErrEmptyMenu)
}

func TestBuildTemplate_UsesTemplateID(t *testing.T) {
	id := uuid.New()
	template, err := buildTemplate(id, `{"items":[{"original_name":"Soup","translated_name":"Soup"}]}`)
	require.NoError(t, err)
	assert.Equal(t, id, template.ID)
	assert.Equal(t, 1, template.DishCount())
}
