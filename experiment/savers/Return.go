package savers

import (
	"fmt"

	ts "github.com/samuelfneumann/gridq/timestep"
)

// Return tracks and saves the episodic return while learning
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Saver
func NewReturn(filename string) *Return {
	var saver Return
	saver.lastTimeStep = -1
	saver.filename = filename
	return &saver
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Saver will store all rewards seen in the
// episode, and save the cumulative reward for that episode as the
// episodic return. When a new episode starts, this method will
// automatically detect this and start accumulating the rewards for this
// new episode separately from the rewards seen on previous episodes.
//
// A First timestep always begins a new episode, dropping the rewards of
// an episode which was left unfinished. Track panics if it is called
// for non-sequential timesteps.
func (o *Return) Track(step ts.TimeStep) {
	if step.First() {
		o.currentReturn = 0.0
		o.lastTimeStep = -1
	}
	if o.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			o.lastTimeStep, step.Number))
	}

	o.currentReturn += step.Reward
	if !step.Last() {
		o.lastTimeStep = step.Number
		return
	}

	// Episode has ended, cache the return and begin tracking the
	// return for a new episode
	o.episodeReturns = append(o.episodeReturns, o.currentReturn)
	o.currentReturn = 0.0
	o.lastTimeStep = -1
}

// Returns returns the returns of all finished episodes
func (o *Return) Returns() []float64 {
	return o.episodeReturns
}

// Save saves the data tracked by the Return Saver to disk.
func (o *Return) Save() error {
	return save(o.filename, o.episodeReturns)
}
