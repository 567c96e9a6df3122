package savers

import (
	"io"
	"os"

	"github.com/samuelfneumann/gridq/timestep"
	"github.com/samuelfneumann/gridq/utils/progressbar"
)

// Progress displays a progress bar which advances once per finished
// episode. Progress saves no data.
type Progress struct {
	bar   *progressbar.ManualProgressBar
	every int
	seen  int
}

// NewProgress returns a new Progress Saver for a run of at most
// episodes episodes, redrawing the bar on standard error every time
// every episodes finish
func NewProgress(width, episodes, every int) *Progress {
	return NewProgressTo(os.Stderr, width, episodes, every)
}

// NewProgressTo returns a new Progress Saver which draws to out
func NewProgressTo(out io.Writer, width, episodes, every int) *Progress {
	if every < 1 {
		every = 1
	}
	return &Progress{
		bar:   progressbar.NewManualProgressBarTo(out, width, episodes),
		every: every,
	}
}

// Track increments the progress bar at the end of each episode
func (p *Progress) Track(t timestep.TimeStep) {
	if !t.Last() {
		return
	}
	p.bar.Increment()
	p.seen++
	if p.seen%p.every == 0 {
		p.bar.Display()
	}
}

// Save draws the bar as complete, since learning may stop before the
// episode budget is used up
func (p *Progress) Save() error {
	p.bar.Finish()
	p.bar.Display()
	p.bar.Close()
	return nil
}
