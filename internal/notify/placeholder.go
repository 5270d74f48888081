// Package notify holds the board's transient surfaces: the single
// empty-state placeholder and auto-expiring toast notifications.
package notify

import "sync"

// Placeholder is the "no results" notice shown when the visibility set is
// empty. Show and Hide are idempotent; the board owns exactly one instance,
// so at most one placeholder can exist at a time.
type Placeholder struct {
	mu      sync.Mutex
	visible bool
	onShow  func()
	onHide  func()
}

// NewPlaceholder creates a hidden placeholder. The callbacks are optional
// presentation hooks and fire only on actual state transitions.
func NewPlaceholder(onShow, onHide func()) *Placeholder {
	return &Placeholder{onShow: onShow, onHide: onHide}
}

// Show makes the placeholder visible. A no-op if already shown.
func (p *Placeholder) Show() {
	p.mu.Lock()
	if p.visible {
		p.mu.Unlock()
		return
	}
	p.visible = true
	fn := p.onShow
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Hide removes the placeholder. A no-op if already hidden.
func (p *Placeholder) Hide() {
	p.mu.Lock()
	if !p.visible {
		p.mu.Unlock()
		return
	}
	p.visible = false
	fn := p.onHide
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Visible reports the current placeholder state.
func (p *Placeholder) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Sync shows the placeholder when empty is true and hides it otherwise.
func (p *Placeholder) Sync(empty bool) {
	if empty {
		p.Show()
	} else {
		p.Hide()
	}
}
