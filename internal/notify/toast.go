package notify

import (
	"sort"
	"sync"
	"time"
)

// Default toast timing: how long a toast stays fully visible, then how long
// its exit transition runs before removal.
const (
	DefaultToastDwell = 3 * time.Second
	DefaultToastExit  = 400 * time.Millisecond
)

// Toast is one transient notification.
type Toast struct {
	ID      int       `json:"id"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	ShownAt time.Time `json:"shown_at"`
	Exiting bool      `json:"exiting"`
}

// Toaster displays transient notifications. Once shown, a toast cannot be
// cancelled: it dwells for a fixed period, spends a fixed exit period
// animating out, then is removed.
type Toaster struct {
	mu     sync.Mutex
	dwell  time.Duration
	exit   time.Duration
	seq    int
	active map[int]*Toast
}

// NewToaster creates a Toaster. Non-positive durations fall back to the
// defaults.
func NewToaster(dwell, exit time.Duration) *Toaster {
	if dwell <= 0 {
		dwell = DefaultToastDwell
	}
	if exit <= 0 {
		exit = DefaultToastExit
	}
	return &Toaster{
		dwell:  dwell,
		exit:   exit,
		active: make(map[int]*Toast),
	}
}

// Show displays a toast and starts its removal timer. Returns the toast ID.
func (t *Toaster) Show(kind, message string) int {
	t.mu.Lock()
	t.seq++
	id := t.seq
	t.active[id] = &Toast{
		ID:      id,
		Kind:    kind,
		Message: message,
		ShownAt: time.Now(),
	}
	t.mu.Unlock()

	time.AfterFunc(t.dwell, func() {
		t.mu.Lock()
		if toast, ok := t.active[id]; ok {
			toast.Exiting = true
		}
		t.mu.Unlock()

		time.AfterFunc(t.exit, func() {
			t.mu.Lock()
			delete(t.active, id)
			t.mu.Unlock()
		})
	})

	return id
}

// Active returns a snapshot of the currently displayed toasts, oldest first.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, 0, len(t.active))
	for _, toast := range t.active {
		out = append(out, *toast)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
