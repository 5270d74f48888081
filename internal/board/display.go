package board

import "log/slog"

// LogDisplay renders board updates as structured log events. It stands in
// for a real card renderer in headless deployments and implements both
// Display and ProgressAnimator.
type LogDisplay struct {
	log *slog.Logger
}

// NewLogDisplay creates a LogDisplay writing to the given logger.
func NewLogDisplay(log *slog.Logger) *LogDisplay {
	return &LogDisplay{log: log}
}

func (d *LogDisplay) ShowCard(index int, animate bool) {
	d.log.Debug("show card", "index", index, "animate", animate)
}

func (d *LogDisplay) HideCard(index int) {
	d.log.Debug("hide card", "index", index)
}

func (d *LogDisplay) AnimateProgress(index, percent int) {
	d.log.Debug("animate progress", "index", index, "percent", percent)
}
