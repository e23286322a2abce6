// Package rubric defines the ordered scoring checklist that drives audit
// scoring and the positional bulk-import layout.
//
// The rubric is pure data: an ordered set of items, each with a stable id,
// a hierarchical category label ("S1: Foundation | Professional Image"),
// a task description and a maximum point value. Item ids follow the
// s{series}-{index} convention so they line up with the fixed import layout.
package rubric

import (
	"fmt"
	"strings"
)

// Item is a single checklist entry.
type Item struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Task      string  `json:"task"`
	MaxPoints float64 `json:"maxPoints"`
	Bonus     bool    `json:"isBonus,omitempty"`
}

// Series returns the top-level series label of the item, e.g. "S1".
// The category format is "S1: Foundation | Subcategory".
func (i Item) Series() string {
	if idx := strings.Index(i.Category, ":"); idx >= 0 {
		return strings.TrimSpace(i.Category[:idx])
	}
	return i.Category
}

// Rubric is an ordered, id-indexed set of checklist items.
type Rubric struct {
	items []Item
	byID  map[string]float64
}

// New builds a Rubric from items, validating id uniqueness and point values.
func New(items []Item) (*Rubric, error) {
	byID := make(map[string]float64, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			return nil, fmt.Errorf("%w: empty id (task %q)", ErrInvalidItem, it.Task)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, it.ID)
		}
		if it.MaxPoints <= 0 {
			return nil, fmt.Errorf("%w: item %q must have positive max points", ErrInvalidItem, it.ID)
		}
		byID[it.ID] = it.MaxPoints
	}
	out := make([]Item, len(items))
	copy(out, items)
	return &Rubric{items: out, byID: byID}, nil
}

// Lookup returns the maximum points for an item id.
func (r *Rubric) Lookup(id string) (float64, bool) {
	max, ok := r.byID[id]
	return max, ok
}

// Items returns the checklist in declared order.
func (r *Rubric) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of items.
func (r *Rubric) Len() int {
	return len(r.items)
}

// SeriesLabels returns the distinct series labels in declared order.
func (r *Rubric) SeriesLabels() []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, it := range r.items {
		s := it.Series()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		labels = append(labels, s)
	}
	return labels
}

// seriesItemCount counts items whose id starts with "<series>-".
func (r *Rubric) seriesItemCount(series string) int {
	prefix := series + "-"
	n := 0
	for _, it := range r.items {
		if strings.HasPrefix(it.ID, prefix) {
			n++
		}
	}
	return n
}
