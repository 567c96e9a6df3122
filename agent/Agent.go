// Package agent defines the interfaces of agents learning on a gridworld
package agent

import (
	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/samuelfneumann/gridq/experiment/savers"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent learns the action values of the gridworld it was created
// with. Its Policy chooses which actions are taken, and the Learner
// uses these actions to update the action values.
type Agent interface {
	Learner

	// Grid returns the gridworld the agent learns on
	Grid() *gridworld.GridWorld
}

// Learner implements a learning algorithm that defines how action
// values are updated
type Learner interface {
	// Step performs a single action and update, returning whether the
	// update left the action's value unchanged
	Step() bool

	// Next runs a single episode, returning whether no action value
	// changed during the episode
	Next() bool

	// Run runs at most numIter episodes and returns the number run
	Run(numIter int) int

	// Register adds a Saver which is sent every timestep generated
	Register(s savers.Saver)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions from the actions
// available in a cell.
type Policy interface {
	SelectAction(c *gridworld.Cell) *gridworld.Action
}

// EGreedyPolicy is a Policy which selects a random action with
// probability ε, and the greedy action otherwise
type EGreedyPolicy interface {
	Policy
	SetEpsilon(float64)
	Epsilon() float64
}
