// Package page holds the display regions of one dashboard visitor.
package page

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"space/explorer/internal/domain"
	"space/explorer/internal/view"

	"github.com/PuerkitoBio/goquery"
)

var ErrUnknownRegion = errors.New("unknown region")

type region struct {
	visible bool
	content string
}

// Board is the fixed set of named regions a dashboard renders into. Regions
// are created up front and never added or removed afterwards.
type Board struct {
	mu      sync.RWMutex
	regions map[string]*region
}

// NewBoard creates a board with every category's loading and results region,
// all hidden and empty.
func NewBoard() *Board {
	return NewBoardWithRegions(domain.RegionIDs()...)
}

func NewBoardWithRegions(ids ...string) *Board {
	b := &Board{regions: make(map[string]*region, len(ids))}
	for _, id := range ids {
		b.regions[id] = &region{}
	}
	return b
}

func (b *Board) Show(id string) error {
	return b.update(id, func(r *region) { r.visible = true })
}

func (b *Board) Hide(id string) error {
	return b.update(id, func(r *region) { r.visible = false })
}

// Write replaces the region's markup. Visibility is left untouched.
func (b *Board) Write(id, markup string) error {
	return b.update(id, func(r *region) { r.content = markup })
}

func (b *Board) update(id string, fn func(r *region)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	r, ok := b.regions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	fn(r)
	return nil
}

// Region returns a copy of the region's current state.
func (b *Board) Region(id string) (view.RegionState, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r, ok := b.regions[id]
	if !ok {
		return view.RegionState{}, fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	return view.RegionState{ID: id, Visible: r.visible, Content: r.content}, nil
}

func (b *Board) Snapshot() map[string]view.RegionState {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]view.RegionState, len(b.regions))
	for id, r := range b.regions {
		out[id] = view.RegionState{ID: id, Visible: r.visible, Content: r.content}
	}
	return out
}

// Text returns the region's content with markup stripped and whitespace
// collapsed.
func (b *Board) Text(id string) (string, error) {
	state, err := b.Region(id)
	if err != nil {
		return "", err
	}
	if state.Content == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(state.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse region %s: %w", id, err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
