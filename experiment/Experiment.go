// Package experiment implements functionality for running an experiment
package experiment

import "github.com/samuelfneumann/gridq/experiment/savers"

// Experiment runs an agent for a number of episodes and saves the data
// generated along the way.
//
// In order to save data, Experiments use Savers. Savers determine which
// data generated during the experiment is saved. Each TimeStep the
// agent generates is sent to the Savers, which cache the data they
// need until Save is called. New Savers can be registered with an
// Experiment through the constructor or through its Register function.
type Experiment interface {
	// Run runs the experiment, returning the number of episodes run
	Run() int

	// Save all tracked data to disk
	Save() error

	// Adds a new Saver to the (possibly already running) experiment.
	Register(s savers.Saver)
}
