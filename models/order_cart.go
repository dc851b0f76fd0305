package models

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

type CartLine struct {
	Dish     MenuDish `json:"dish"`
	Quantity int      `json:"quantity"`
}

// OrderCart maps dishes to positive quantities. Dishes are keyed by their
// content-derived ID, so structurally equal dishes share one entry.
// The zero value is an empty cart.
type OrderCart struct {
	selections map[uuid.UUID]CartLine
}

func NewOrderCart() *OrderCart {
	return &OrderCart{selections: map[uuid.UUID]CartLine{}}
}

func (c *OrderCart) IsEmpty() bool {
	return len(c.selections) == 0
}

func (c *OrderCart) TotalItems() int {
	total := 0
	for _, line := range c.selections {
		total += line.Quantity
	}
	return total
}

func (c *OrderCart) Quantity(dish MenuDish) int {
	return c.selections[dish.ID].Quantity
}

func (c *OrderCart) Toggle(dish MenuDish) {
	if c.Quantity(dish) > 0 {
		c.SetQuantity(0, dish)
		return
	}
	c.SetQuantity(1, dish)
}

func (c *OrderCart) Increment(dish MenuDish) {
	c.SetQuantity(c.Quantity(dish)+1, dish)
}

// Decrement floors at zero; reaching zero removes the dish.
func (c *OrderCart) Decrement(dish MenuDish) {
	c.SetQuantity(c.Quantity(dish)-1, dish)
}

// SetQuantity removes the dish when quantity <= 0.
func (c *OrderCart) SetQuantity(quantity int, dish MenuDish) {
	if quantity <= 0 {
		delete(c.selections, dish.ID)
		return
	}
	if c.selections == nil {
		c.selections = map[uuid.UUID]CartLine{}
	}
	c.selections[dish.ID] = CartLine{Dish: dish, Quantity: quantity}
}

func (c *OrderCart) Reset() {
	c.selections = map[uuid.UUID]CartLine{}
}

// Lines returns the present entries ordered by summary line.
func (c *OrderCart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.selections))
	for _, line := range c.selections {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].summary() < lines[j].summary()
	})
	return lines
}

// SummaryLines renders "<qty> × <original name>" per entry, sorted by the full line.
func (c *OrderCart) SummaryLines() []string {
	summary := make([]string, 0, len(c.selections))
	for _, line := range c.selections {
		summary = append(summary, line.summary())
	}
	sort.Strings(summary)
	return summary
}

func (l CartLine) summary() string {
	return fmt.Sprintf("%d × %s", l.Quantity, l.Dish.OriginalName)
}
