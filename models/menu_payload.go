package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MenuProxyPayload is the body POSTed to the menu proxy.
type MenuProxyPayload struct {
	Text    string `json:"text"`
	LangOut string `json:"lang_out"`
	LangIn  string `json:"lang_in"`
}

// MenuItemsPayload is the menu document the model embeds inside the proxy envelope.
type MenuItemsPayload struct {
	Items []MenuItemPayload `json:"items"`
}

func (p *MenuItemsPayload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("menu payload must be an object")
	}

	raw, ok := fields["items"]
	if !ok {
		return errors.New("menu payload has no items key")
	}
	if isNull(raw) {
		return errors.New("menu payload items is null")
	}

	var items []MenuItemPayload
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("items: %w", err)
	}
	if items == nil {
		items = []MenuItemPayload{}
	}
	p.Items = items
	return nil
}

// MenuItemPayload is one raw item as the model wrote it. Names are required;
// every other field is optional and shape-tolerant.
type MenuItemPayload struct {
	OriginalName       string
	TranslatedName     string
	Description        OptionalText
	Category           OptionalText
	Section            OptionalText
	Price              OptionalText
	Allergens          FlexibleStrings
	SpiceLevel         OptionalText
	RecommendedPairing OptionalText
}

func (p *MenuItemPayload) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("menu item must be an object")
	}

	var err error
	if p.OriginalName, err = requiredString(fields, "original_name", "originalName"); err != nil {
		return err
	}
	if p.TranslatedName, err = requiredString(fields, "translated_name", "translatedName"); err != nil {
		return err
	}

	optionals := []struct {
		target *OptionalText
		keys   []string
	}{
		{&p.Description, []string{"description"}},
		{&p.Category, []string{"category"}},
		{&p.Section, []string{"section"}},
		{&p.Price, []string{"price"}},
		{&p.SpiceLevel, []string{"spice_level", "spiceLevel"}},
		{&p.RecommendedPairing, []string{"recommended_pairing", "recommendedPairing"}},
	}
	for _, opt := range optionals {
		key, raw, ok := lookup(fields, opt.keys...)
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, opt.target); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if key, raw, ok := lookup(fields, "allergens"); ok {
		if err := json.Unmarshal(raw, &p.Allergens); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// AsMenuDish converts the raw item into its canonical dish.
func (p MenuItemPayload) AsMenuDish() MenuDish {
	dish := MenuDish{
		OriginalName:       p.OriginalName,
		LocalizedName:      p.TranslatedName,
		Description:        p.Description.Value,
		Price:              p.Price.Ptr(),
		Allergens:          append([]string{}, p.Allergens...),
		RecommendedPairing: p.RecommendedPairing.Ptr(),
	}
	if p.SpiceLevel.Valid {
		if level, ok := ParseSpiceLevel(p.SpiceLevel.Value); ok {
			dish.SpiceLevel = &level
		}
	}
	return NewMenuDish(dish)
}

// SectionTitle resolves section, then category, then the "Menu" fallback.
func (p MenuItemPayload) SectionTitle() string {
	if p.Section.Valid {
		return p.Section.Value
	}
	if p.Category.Valid {
		return p.Category.Value
	}
	return "Menu"
}

// OptionalText accepts a string or a number. Blank strings and null decode as absent.
type OptionalText struct {
	Value string
	Valid bool
}

func (t *OptionalText) UnmarshalJSON(data []byte) error {
	*t = OptionalText{}
	data = bytes.TrimSpace(data)
	if isNull(data) {
		return nil
	}

	var value string
	switch {
	case len(data) > 0 && data[0] == '"':
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
	case json.Valid(data) && isNumberLiteral(data):
		value = string(data)
	default:
		return fmt.Errorf("expected string or number, got %s", truncateRaw(data))
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	*t = OptionalText{Value: value, Valid: true}
	return nil
}

func (t OptionalText) Ptr() *string {
	if !t.Valid {
		return nil
	}
	v := t.Value
	return &v
}

// FlexibleStrings decodes either a JSON array of strings or one comma-separated
// string. Entries are trimmed and blanks dropped; null decodes as empty.
type FlexibleStrings []string

func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	result := []string{}

	switch {
	case isNull(data):
	case len(data) > 0 && data[0] == '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, entry := range list {
			if entry = strings.TrimSpace(entry); entry != "" {
				result = append(result, entry)
			}
		}
	case len(data) > 0 && data[0] == '"':
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		for _, entry := range strings.Split(single, ",") {
			if entry = strings.TrimSpace(entry); entry != "" {
				result = append(result, entry)
			}
		}
	default:
		return fmt.Errorf("expected array or string, got %s", truncateRaw(data))
	}

	*f = result
	return nil
}

func requiredString(fields map[string]json.RawMessage, keys ...string) (string, error) {
	key, raw, ok := lookup(fields, keys...)
	if !ok {
		return "", fmt.Errorf("missing required field %s", keys[0])
	}
	if isNull(raw) {
		return "", fmt.Errorf("required field %s is null", key)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

// lookup returns the first alias present in fields.
func lookup(fields map[string]json.RawMessage, keys ...string) (string, json.RawMessage, bool) {
	for _, key := range keys {
		if raw, ok := fields[key]; ok {
			return key, raw, true
		}
	}
	return "", nil, false
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func isNumberLiteral(data []byte) bool {
	c := data[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// truncateRaw shortens raw JSON for error messages without splitting a rune.
func truncateRaw(data []byte) string {
	const maxRaw = 32
	runes := []rune(string(data))
	if len(runes) > maxRaw {
		return string(runes[:maxRaw]) + "…"
	}
	return string(data)
}
