// Package board maintains the live card-visibility state for one loaded
// class collection and wires filter inputs to it.
package board

import (
	"sync"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/notify"
)

// Display receives visibility decisions for cards. Showing may play an entry
// animation; hiding never animates. A nil Display disables rendering without
// affecting state tracking.
type Display interface {
	ShowCard(index int, animate bool)
	HideCard(index int)
}

// ProgressAnimator replays the progress-bar fill animation on a card.
// Displays that render progress bars implement it alongside Display.
type ProgressAnimator interface {
	AnimateProgress(index, percent int)
}

// Board tracks per-card visibility and keeps the empty-state placeholder in
// sync with the visible set. All updates happen synchronously under one
// lock, so a partially applied visibility set is never observable.
type Board struct {
	mu          sync.Mutex
	classes     []catalog.Class
	visible     []bool
	display     Display
	placeholder *notify.Placeholder
}

// New creates a Board over the given collection. All cards start hidden
// until the first Apply. The placeholder is optional.
func New(classes []catalog.Class, display Display, placeholder *notify.Placeholder) *Board {
	return &Board{
		classes:     classes,
		visible:     make([]bool, len(classes)),
		display:     display,
		placeholder: placeholder,
	}
}

// Apply shows every card whose index is in the visibility set and hides the
// rest, then shows or hides the placeholder depending on whether the set is
// empty.
func (b *Board) Apply(visibleSet []int, animate bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	inSet := make(map[int]bool, len(visibleSet))
	for _, i := range visibleSet {
		if i >= 0 && i < len(b.classes) {
			inSet[i] = true
		}
	}

	for i := range b.classes {
		b.visible[i] = inSet[i]
		if b.display == nil {
			continue
		}
		if inSet[i] {
			b.display.ShowCard(i, animate)
		} else {
			b.display.HideCard(i)
		}
	}

	if b.placeholder != nil {
		b.placeholder.Sync(len(inSet) == 0)
	}
}

// Visible returns the indices of currently shown cards, ascending.
func (b *Board) Visible() []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]int, 0, len(b.visible))
	for i, v := range b.visible {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// Classes returns a copy of the loaded collection.
func (b *Board) Classes() []catalog.Class {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]catalog.Class(nil), b.classes...)
}

// SetClasses replaces the collection, resetting all cards to hidden. Callers
// mutating the collection at runtime follow this with a refilter.
func (b *Board) SetClasses(classes []catalog.Class) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.classes = classes
	b.visible = make([]bool, len(classes))
}

// AnimateProgress replays the progress-bar animation on all visible cards
// that carry a progress value. A no-op when the display does not animate.
func (b *Board) AnimateProgress() {
	b.mu.Lock()
	defer b.mu.Unlock()

	anim, ok := b.display.(ProgressAnimator)
	if !ok {
		return
	}
	for i, c := range b.classes {
		if b.visible[i] && c.Progress > 0 {
			anim.AnimateProgress(i, c.Progress)
		}
	}
}

// Placeholder exposes the board's empty-state notice, may be nil.
func (b *Board) Placeholder() *notify.Placeholder {
	return b.placeholder
}
