package models

import (
	"strings"

	"github.com/google/uuid"
)

// dishNamespace seeds the content-derived dish IDs. Changing it changes every dish ID.
var dishNamespace = uuid.MustParse("5b0e8f2a-4c1d-4f6e-9a3b-7d2c1e0f9a84")

// ProcessingRequest carries the recognized text of one capture session to a MenuProcessingService.
type ProcessingRequest struct {
	UploadID       uuid.UUID `json:"upload_id"`
	PageCount      int       `json:"page_count"`
	RecognizedText string    `json:"recognized_text"`
	LanguageIn     string    `json:"lang_in"`
	LanguageOut    string    `json:"lang_out"`
}

// NewProcessingRequest fills in a fresh upload ID.
func NewProcessingRequest(pageCount int, recognizedText, languageIn, languageOut string) ProcessingRequest {
	return ProcessingRequest{
		UploadID:       uuid.New(),
		PageCount:      pageCount,
		RecognizedText: recognizedText,
		LanguageIn:     languageIn,
		LanguageOut:    languageOut,
	}
}

type MenuTemplate struct {
	ID       uuid.UUID     `json:"id"`
	Sections []MenuSection `json:"sections"`
}

// WithID returns a copy of the template carrying newID.
func (t MenuTemplate) WithID(newID uuid.UUID) MenuTemplate {
	return MenuTemplate{ID: newID, Sections: t.Sections}
}

// DishCount is the number of dishes across all sections.
func (t MenuTemplate) DishCount() int {
	total := 0
	for _, section := range t.Sections {
		total += len(section.Dishes)
	}
	return total
}

// FindDish looks a dish up by ID across all sections.
func (t MenuTemplate) FindDish(id uuid.UUID) (MenuDish, bool) {
	for _, section := range t.Sections {
		for _, dish := range section.Dishes {
			if dish.ID == id {
				return dish, true
			}
		}
	}
	return MenuDish{}, false
}

type MenuSection struct {
	ID     uuid.UUID  `json:"id"`
	Title  string     `json:"title"`
	Dishes []MenuDish `json:"dishes"`
}

type SpiceLevel string

const (
	SpiceNone   SpiceLevel = "none"
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// ParseSpiceLevel matches case-insensitively; "spicy" is read as hot. Anything else is reported as absent.
func ParseSpiceLevel(value string) (SpiceLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none":
		return SpiceNone, true
	case "mild":
		return SpiceMild, true
	case "medium":
		return SpiceMedium, true
	case "hot", "spicy":
		return SpiceHot, true
	default:
		return "", false
	}
}

func (s SpiceLevel) LocalizedDescription() string {
	switch s {
	case SpiceNone:
		return "Not spicy"
	case SpiceMild:
		return "Mild"
	case SpiceMedium:
		return "Medium"
	case SpiceHot:
		return "Hot"
	default:
		return ""
	}
}

// MenuDish is one normalized menu entry. Its ID is derived from the content, so two
// dishes with equal fields share an ID no matter how many times they were decoded.
type MenuDish struct {
	ID                 uuid.UUID   `json:"id"`
	OriginalName       string      `json:"original_name"`
	LocalizedName      string      `json:"localized_name"`
	Description        string      `json:"description"`
	Price              *string     `json:"price,omitempty"`
	Allergens          []string    `json:"allergens"`
	SpiceLevel         *SpiceLevel `json:"spice_level,omitempty"`
	ImageURL           *string     `json:"image_url,omitempty"`
	RecommendedPairing *string     `json:"recommended_pairing,omitempty"`
}

// NewMenuDish stamps the content-derived ID onto d and guarantees a non-nil allergen list.
func NewMenuDish(d MenuDish) MenuDish {
	if d.Allergens == nil {
		d.Allergens = []string{}
	}
	d.ID = d.ContentID()
	return d
}

// ContentID hashes every field except the ID itself.
func (d MenuDish) ContentID() uuid.UUID {
	var b strings.Builder
	field := func(v string) {
		b.WriteString(v)
		b.WriteByte(0x1f)
	}
	optional := func(v *string) {
		if v == nil {
			b.WriteByte(0x1e)
			return
		}
		field(*v)
	}

	field(d.OriginalName)
	field(d.LocalizedName)
	field(d.Description)
	optional(d.Price)
	for _, allergen := range d.Allergens {
		field(allergen)
	}
	b.WriteByte(0x1d)
	if d.SpiceLevel != nil {
		field(string(*d.SpiceLevel))
	} else {
		b.WriteByte(0x1e)
	}
	optional(d.ImageURL)
	optional(d.RecommendedPairing)

	return uuid.NewSHA1(dishNamespace, []byte(b.String()))
}

// ProcessingState mirrors the lifecycle a polling client observes.
type ProcessingState struct {
	Status   string        `json:"status"`
	Progress float64       `json:"progress,omitempty"`
	Template *MenuTemplate `json:"template,omitempty"`
	Message  string        `json:"message,omitempty"`
}

const (
	StateQueued     = "queued"
	StateProcessing = "processing"
	StateReady      = "ready"
	StateFailed     = "failed"
)

func ReadyState(template MenuTemplate) ProcessingState {
	return ProcessingState{Status: StateReady, Template: &template}
}

// DebugPayload is what the diagnostic side channel managed to read back from the proxy.
type DebugPayload struct {
	LangIn  string `json:"lang_in"`
	LangOut string `json:"lang_out"`
	Text    string `json:"text"`
}

func stringPtr(v string) *string { return &v }

func spicePtr(v SpiceLevel) *SpiceLevel { return &v }
