package board

import (
	"log/slog"
	"sync"
	"time"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/debounce"
	"github.com/claude/classgrid/internal/notify"
)

// ReloadFunc fetches a fresh class collection for a full refresh. Optional;
// without one, Refresh only re-runs the filter over the current collection.
type ReloadFunc func() ([]catalog.Class, error)

// Controller wires filter inputs to a Board. Search changes are debounced;
// selector changes apply immediately. Every applied change triggers one full
// recompute of the visibility set.
type Controller struct {
	board  *Board
	toasts *notify.Toaster
	reload ReloadFunc
	log    *slog.Logger

	search *debounce.Input
	resize *debounce.Debouncer

	mu    sync.Mutex
	state catalog.FilterState
}

// NewController creates a Controller and runs the initial filter pass with
// the default state, so the board is populated on load. searchWindow <= 0
// uses the default debounce window. toasts and reload may be nil.
func NewController(b *Board, toasts *notify.Toaster, reload ReloadFunc, searchWindow time.Duration, log *slog.Logger) *Controller {
	if searchWindow <= 0 {
		searchWindow = debounce.DefaultSearchWindow
	}
	c := &Controller{
		board:  b,
		toasts: toasts,
		reload: reload,
		log:    log,
		resize: debounce.New(debounce.DefaultResizeWindow),
		state:  catalog.DefaultFilterState(),
	}
	c.search = debounce.NewInput(searchWindow, c.applySearch)
	c.Refilter()
	return c
}

// SetSearch records a new search term. The recompute runs only after the
// debounce window passes with no further keystrokes.
func (c *Controller) SetSearch(term string) {
	c.search.Submit(term)
}

// applySearch is the debounced trailing edge of SetSearch.
func (c *Controller) applySearch(term string) {
	c.mu.Lock()
	c.state.Search = term
	c.mu.Unlock()
	c.Refilter()
}

// SetLevel applies a level selector change immediately. An empty value
// behaves as the All sentinel.
func (c *Controller) SetLevel(level string) {
	if level == "" {
		level = catalog.All
	}
	c.mu.Lock()
	c.state.Level = level
	c.mu.Unlock()
	c.Refilter()
}

// SetCategory applies a category selector change immediately. An empty
// value behaves as the All sentinel.
func (c *Controller) SetCategory(category string) {
	if category == "" {
		category = catalog.All
	}
	c.mu.Lock()
	c.state.Category = category
	c.mu.Unlock()
	c.Refilter()
}

// State returns the currently applied filter state. A search term still
// inside its debounce window is not yet reflected.
func (c *Controller) State() catalog.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refilter recomputes the visibility set against the current state and
// applies it to the board. Part of the debug surface.
func (c *Controller) Refilter() {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	visible := catalog.Filter(c.board.Classes(), state)
	c.board.Apply(visible, true)

	c.log.Debug("refilter",
		"search", state.Search,
		"level", state.Level,
		"category", state.Category,
		"visible", len(visible),
	)
}

// Reanimate replays the progress-bar animations on visible cards. Part of
// the debug surface.
func (c *Controller) Reanimate() {
	c.board.AnimateProgress()
}

// Refresh reloads the class collection (when a reload func is set),
// re-runs the filter, and replays animations. Intended for callers that
// mutate the collection at runtime.
func (c *Controller) Refresh() error {
	if c.reload != nil {
		classes, err := c.reload()
		if err != nil {
			c.log.Error("refresh reload failed", "error", err)
			if c.toasts != nil {
				c.toasts.Show("error", "Could not refresh schedule")
			}
			return err
		}
		c.board.SetClasses(classes)
	}

	c.Refilter()
	c.Reanimate()

	if c.toasts != nil {
		c.toasts.Show("success", "Schedule refreshed")
	}
	return nil
}

// Resize coalesces rapid layout changes into one relayout call. Uses its own
// debounce instance, independent of the search window.
func (c *Controller) Resize(width, height int) {
	c.resize.Call(func() {
		c.log.Debug("relayout", "width", width, "height", height)
	})
}

// Toasts exposes the controller's toaster, may be nil.
func (c *Controller) Toasts() *notify.Toaster {
	return c.toasts
}

// Board exposes the underlying board.
func (c *Controller) Board() *Board {
	return c.board
}
