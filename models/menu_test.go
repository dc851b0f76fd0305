package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpiceLevel(t *testing.T) {
	cases := map[string]struct {
		want SpiceLevel
		ok   bool
	}{
		"none":    {SpiceNone, true},
		"Mild":    {SpiceMild, true},
		" MEDIUM": {SpiceMedium, true},
		"hot":     {SpiceHot, true},
		"Spicy":   {SpiceHot, true},
		"extreme": {"", false},
		"":        {"", false},
	}
	for input, tc := range cases {
		got, ok := ParseSpiceLevel(input)
		assert.Equal(t, tc.ok, ok, input)
		assert.Equal(t, tc.want, got, input)
	}
}

func TestMenuDish_ContentID(t *testing.T) {
	a := NewMenuDish(MenuDish{OriginalName: "Pho", LocalizedName: "Noodle soup", Allergens: []string{"Fish"}})
	b := NewMenuDish(MenuDish{OriginalName: "Pho", LocalizedName: "Noodle soup", Allergens: []string{"Fish"}})
	c := NewMenuDish(MenuDish{OriginalName: "Pho", LocalizedName: "Noodle soup"})

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotNil(t, c.Allergens)
}

func TestMenuDish_ContentIDDistinguishesAbsentFromEmpty(t *testing.T) {
	empty := ""
	absent := NewMenuDish(MenuDish{OriginalName: "A", LocalizedName: "A"})
	blank := NewMenuDish(MenuDish{OriginalName: "A", LocalizedName: "A", Price: &empty})
	assert.NotEqual(t, absent.ID, blank.ID)
}

func TestSampleTemplate(t *testing.T) {
	template := SampleTemplate()
	require.Len(t, template.Sections, 4)
	assert.Equal(t, 8, template.DishCount())

	first := template.Sections[0].Dishes[0]
	found, ok := template.FindDish(first.ID)
	require.True(t, ok)
	assert.Equal(t, "Tomato Bruschetta", found.LocalizedName)

	_, ok = template.FindDish(uuid.New())
	assert.False(t, ok)

	id := uuid.New()
	renamed := template.WithID(id)
	assert.Equal(t, id, renamed.ID)
	assert.Equal(t, template.Sections, renamed.Sections)
}

func TestSpiceLevel_LocalizedDescription(t *testing.T) {
	assert.Equal(t, "Not spicy", SpiceNone.LocalizedDescription())
	assert.Equal(t, "Hot", SpiceHot.LocalizedDescription())
	assert.Equal(t, "", SpiceLevel("volcanic").LocalizedDescription())
}
