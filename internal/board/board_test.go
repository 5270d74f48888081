package board

import (
	"reflect"
	"sync"
	"testing"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/claude/classgrid/internal/notify"
)

// recordingDisplay captures show/hide calls for assertions.
type recordingDisplay struct {
	mu       sync.Mutex
	shown    map[int]bool
	animated map[int]bool
	progress map[int]int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		shown:    make(map[int]bool),
		animated: make(map[int]bool),
		progress: make(map[int]int),
	}
}

func (d *recordingDisplay) ShowCard(index int, animate bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown[index] = true
	d.animated[index] = animate
}

func (d *recordingDisplay) HideCard(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown[index] = false
}

func (d *recordingDisplay) AnimateProgress(index, percent int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.progress[index] = percent
}

func (d *recordingDisplay) isShown(i int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown[i]
}

func testClasses() []catalog.Class {
	return []catalog.Class{
		{Title: "Power Yoga", Level: "Beginner", Category: "Strength", Progress: 70},
		{Title: "HIIT Blast", Level: "Advanced", Category: "Cardio", Progress: 40},
		{Title: "Morning Yoga Flow", Level: "Intermediate", Category: "Flexibility"},
	}
}

// TestApply verifies that Apply shows exactly the cards in the visibility
// set and hides the rest.
func TestApply(t *testing.T) {
	d := newRecordingDisplay()
	b := New(testClasses(), d, nil)

	b.Apply([]int{0, 2}, true)

	if !d.isShown(0) || d.isShown(1) || !d.isShown(2) {
		t.Errorf("shown = %v, want cards 0 and 2 only", d.shown)
	}
	if got := b.Visible(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("Visible() = %v, want [0 2]", got)
	}
}

// TestApplyEmptySyncsPlaceholder verifies the placeholder is shown iff the
// visibility set is empty.
func TestApplyEmptySyncsPlaceholder(t *testing.T) {
	p := notify.NewPlaceholder(nil, nil)
	b := New(testClasses(), newRecordingDisplay(), p)

	b.Apply(nil, false)
	if !p.Visible() {
		t.Error("placeholder hidden after empty apply, want shown")
	}

	b.Apply([]int{1}, false)
	if p.Visible() {
		t.Error("placeholder shown after non-empty apply, want hidden")
	}
}

// TestApplyNilDisplay verifies that a nil display disables rendering but
// state tracking still works.
func TestApplyNilDisplay(t *testing.T) {
	b := New(testClasses(), nil, nil)
	b.Apply([]int{1}, true)
	if got := b.Visible(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Visible() = %v, want [1]", got)
	}
}

// TestApplyIgnoresOutOfRange verifies stray indices are dropped silently.
func TestApplyIgnoresOutOfRange(t *testing.T) {
	b := New(testClasses(), nil, nil)
	b.Apply([]int{-5, 1, 42}, false)
	if got := b.Visible(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Visible() = %v, want [1]", got)
	}
}

// TestSetClassesResets verifies that swapping the collection hides all cards
// until the next apply.
func TestSetClassesResets(t *testing.T) {
	b := New(testClasses(), nil, nil)
	b.Apply([]int{0, 1, 2}, false)

	b.SetClasses([]catalog.Class{{Title: "Spin Express", Level: "Beginner", Category: "Cardio"}})
	if got := b.Visible(); len(got) != 0 {
		t.Errorf("Visible() = %v after SetClasses, want empty", got)
	}
	if got := b.Classes(); len(got) != 1 || got[0].Title != "Spin Express" {
		t.Errorf("Classes() = %v", got)
	}
}

// TestAnimateProgress verifies that only visible cards with a progress value
// get their bar animation replayed.
func TestAnimateProgress(t *testing.T) {
	d := newRecordingDisplay()
	b := New(testClasses(), d, nil)

	b.Apply([]int{0, 2}, false)
	b.AnimateProgress()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.progress[0] != 70 {
		t.Errorf("progress[0] = %d, want 70", d.progress[0])
	}
	if _, ok := d.progress[1]; ok {
		t.Error("hidden card 1 was animated")
	}
	if _, ok := d.progress[2]; ok {
		t.Error("card 2 has no progress value but was animated")
	}
}
