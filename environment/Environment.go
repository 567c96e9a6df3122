// Package environment outlines the interfaces shared by the gridworld
// environment and the agents that learn on it
package environment

import "github.com/samuelfneumann/gridq/timestep"

// Ender determines when an episode should end
type Ender interface {
	// End returns whether the episode should end at timestep t. If so,
	// t is modified so that its StepType is timestep.Last and its
	// EndType records why the episode ended.
	End(t *timestep.TimeStep) bool
}
