package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gridq/agent"
	"github.com/samuelfneumann/gridq/experiment/savers"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	agent.Agent
	episodes int
	savers   []savers.Saver
}

// NewOnline creates and returns a new online experiment with a given
// agent. The episodes parameter determines the maximum number of
// episodes the experiment is run for, and the s parameter is a slice
// of savers.Saver which determine what data is saved.
func NewOnline(a agent.Agent, episodes int, s ...savers.Saver) *Online {
	o := &Online{Agent: a, episodes: episodes}
	for _, saver := range s {
		o.Register(saver)
	}
	return o
}

// Register registers a saver.Saver with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(s savers.Saver) {
	o.savers = append(o.savers, s)
	o.Agent.Register(s)
}

// Run runs the entire experiment
func (o *Online) Run() int {
	return o.Agent.Run(o.episodes)
}

// Save saves the data cached by the Savers to disk
func (o *Online) Save() error {
	for _, saver := range o.savers {
		if err := saver.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}
