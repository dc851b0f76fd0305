package models

import "github.com/google/uuid"

var sampleTemplateID = uuid.MustParse("A49FBA6C-5602-4DF6-8AB2-99E62B26E2FE")

// SampleTemplate is the canned Italian menu served by the mock processing backend.
func SampleTemplate() MenuTemplate {
	return MenuTemplate{
		ID: sampleTemplateID,
		Sections: []MenuSection{
			sampleSection("Antipasti",
				NewMenuDish(MenuDish{
					OriginalName:       "Bruschetta al Pomodoro",
					LocalizedName:      "Tomato Bruschetta",
					Description:        "Toasted sourdough topped with vine tomatoes, basil, and garlic-infused olive oil.",
					Price:              stringPtr("€7"),
					Allergens:          []string{"Gluten"},
					RecommendedPairing: stringPtr("Pair with the house prosecco."),
				}),
				NewMenuDish(MenuDish{
					OriginalName:  "Carpaccio di Manzo",
					LocalizedName: "Beef Carpaccio",
					Description:   "Thinly sliced raw beef with arugula, Parmigiano Reggiano, and lemon aioli.",
					Price:         stringPtr("€14"),
					Allergens:     []string{"Dairy"},
				}),
			),
			sampleSection("Primi",
				NewMenuDish(MenuDish{
					OriginalName:  "Cacio e Pepe",
					LocalizedName: "Cacio e Pepe",
					Description:   "Handmade tonnarelli pasta tossed with pecorino romano and cracked black pepper.",
					Price:         stringPtr("€16"),
					Allergens:     []string{"Dairy", "Gluten"},
					SpiceLevel:    spicePtr(SpiceMild),
				}),
				NewMenuDish(MenuDish{
					OriginalName:       "Risotto ai Funghi Porcini",
					LocalizedName:      "Porcini Mushroom Risotto",
					Description:        "Creamy carnaroli rice simmered with wild porcini mushrooms and thyme.",
					Price:              stringPtr("€18"),
					Allergens:          []string{"Dairy"},
					RecommendedPairing: stringPtr("Try with the Barolo by the glass."),
				}),
			),
			sampleSection("Secondi",
				NewMenuDish(MenuDish{
					OriginalName:  "Saltimbocca alla Romana",
					LocalizedName: "Prosciutto Sage Veal",
					Description:   "Veal cutlets wrapped in prosciutto and sage, finished with white wine butter sauce.",
					Price:         stringPtr("€22"),
					Allergens:     []string{"Dairy"},
				}),
				NewMenuDish(MenuDish{
					OriginalName:  "Branzino al Limone",
					LocalizedName: "Lemon Sea Bass",
					Description:   "Whole Mediterranean sea bass roasted with Amalfi lemons and herbs.",
					Price:         stringPtr("€26"),
					Allergens:     []string{"Fish"},
				}),
			),
			sampleSection("Dolci",
				NewMenuDish(MenuDish{
					OriginalName:  "Tiramisù della Casa",
					LocalizedName: "House Tiramisu",
					Description:   "Layers of espresso-soaked savoiardi, mascarpone cream, and cocoa.",
					Price:         stringPtr("€9"),
					Allergens:     []string{"Dairy", "Eggs", "Gluten"},
				}),
				NewMenuDish(MenuDish{
					OriginalName:  "Gelato Artigianale",
					LocalizedName: "Artisanal Gelato",
					Description:   "Daily selection of house-made gelato flavors. Ask for today's options.",
					Price:         stringPtr("€7"),
					Allergens:     []string{},
				}),
			),
		},
	}
}

func sampleSection(title string, dishes ...MenuDish) MenuSection {
	return MenuSection{
		ID:     uuid.NewSHA1(sampleTemplateID, []byte(title)),
		Title:  title,
		Dishes: dishes,
	}
}
