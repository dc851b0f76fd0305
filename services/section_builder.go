package services

import (
	"Mainu/models"

	"github.com/google/uuid"
)

// BuildSections groups items by resolved section title, keeping titles in
// first-seen order and dishes in input order.
func BuildSections(items []models.MenuItemPayload) []models.MenuSection {
	var orderedTitles []string
	dishesByTitle := map[string][]models.MenuDish{}

	for _, item := range items {
		title := item.SectionTitle()
		if _, seen := dishesByTitle[title]; !seen {
			orderedTitles = append(orderedTitles, title)
		}
		dishesByTitle[title] = append(dishesByTitle[title], item.AsMenuDish())
	}

	sections := make([]models.MenuSection, 0, len(orderedTitles))
	for _, title := range orderedTitles {
		sections = append(sections, models.MenuSection{
			ID:     uuid.New(),
			Title:  title,
			Dishes: dishesByTitle[title],
		})
	}
	return sections
}

// buildTemplate runs the normalizer and section builder over an extracted menu text.
func buildTemplate(templateID uuid.UUID, menuText string) (models.MenuTemplate, error) {
	items, err := NormalizeMenuJSON(menuText)
	if err != nil {
		return models.MenuTemplate{}, err
	}
	if len(items) == 0 {
		return models.MenuTemplate{}, ErrEmptyMenu
	}
	return models.MenuTemplate{
		ID:       templateID,
		Sections: BuildSections(items),
	}, nil
}
