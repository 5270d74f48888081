package catalog

import "github.com/google/uuid"

// Class is one workout-class entry on the schedule board.
type Class struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Level       string    `json:"level"`
	Category    string    `json:"category"`
	Instructor  string    `json:"instructor,omitempty"`
	DurationMin int       `json:"duration_min,omitempty"`
	Progress    int       `json:"progress,omitempty"`
}
