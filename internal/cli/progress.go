package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// ProgressThreshold is the batch size from which a progress bar is shown.
const ProgressThreshold = 500

// Progress wraps a terminal progress bar. A nil *Progress is a no-op.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a progress bar for total items, or nil when total is
// below ProgressThreshold.
func NewProgress(w io.Writer, total int, description string) *Progress {
	if total < ProgressThreshold {
		return nil
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return &Progress{bar: bar}
}

// Increment advances the bar by one. Safe for concurrent use.
func (p *Progress) Increment() {
	if p == nil {
		return
	}
	if err := p.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Func returns Increment as a callback, or nil for a nil *Progress.
func (p *Progress) Func() func() {
	if p == nil {
		return nil
	}
	return p.Increment
}
