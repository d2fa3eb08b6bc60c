package presentation

import (
	"errors"
	"sync"

	"validation-guide/internal/catalog"
)

// DefaultExpanded lists the items that start expanded
var DefaultExpanded = []string{"p1"}

var ErrUnknownItem = errors.New("unknown item")

// ToggleState tracks which rendered items are expanded. It holds exactly one
// entry per item it was created with.
type ToggleState struct {
	mu       sync.Mutex
	expanded map[string]bool
}

// NewToggleState creates collapsed entries for ids, then expands the given ones
func NewToggleState(ids []string, expanded ...string) *ToggleState {
	t := &ToggleState{expanded: make(map[string]bool, len(ids))}
	for _, id := range ids {
		t.expanded[id] = false
	}
	for _, id := range expanded {
		if _, ok := t.expanded[id]; ok {
			t.expanded[id] = true
		}
	}
	return t
}

// NewCatalogToggles creates toggle state for every method card and timeline phase
func NewCatalogToggles() *ToggleState {
	return NewToggleState(ItemIDs(), DefaultExpanded...)
}

// ItemIDs returns the ids of every collapsible item on the page
func ItemIDs() []string {
	var ids []string
	for _, p := range catalog.Phases() {
		ids = append(ids, p.ID)
	}
	for _, m := range catalog.Methods() {
		ids = append(ids, m.ID)
	}
	return ids
}

// Toggle flips an item and returns its new state
func (t *ToggleState) Toggle(id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.expanded[id]
	if !ok {
		return false, ErrUnknownItem
	}
	t.expanded[id] = !current
	return !current, nil
}

// Set forces an item open or closed
func (t *ToggleState) Set(id string, expanded bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.expanded[id]; !ok {
		return ErrUnknownItem
	}
	t.expanded[id] = expanded
	return nil
}

// Expanded reports whether an item is open
func (t *ToggleState) Expanded(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.expanded[id]
}

// Snapshot returns a copy of every entry
func (t *ToggleState) Snapshot() map[string]bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]bool, len(t.expanded))
	for id, v := range t.expanded {
		out[id] = v
	}
	return out
}
