// Package policy implements policies over the tabular action values of
// a gridworld
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gridq/environment/gridworld"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over the actions of a cell
type EGreedy struct {
	epsilon float64
	seed    rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected
func NewEGreedy(e float64, seed uint64) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon %v not in [0, 1]", e)
	}
	return &EGreedy{e, rand.NewSource(seed)}, nil
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the probability of selecting a random action
func (p *EGreedy) SetEpsilon(e float64) {
	if e < 0 || e > 1 {
		panic(fmt.Sprintf("setEpsilon: epsilon %v not in [0, 1]", e))
	}
	p.epsilon = e
}

// SelectAction selects an action from an ε-greedy policy over the
// actions of cell c. With probability ε an action is chosen uniformly
// at random, otherwise the greedy action is chosen. SelectAction panics
// if c has no actions.
func (p *EGreedy) SelectAction(c *gridworld.Cell) *gridworld.Action {
	actions := c.Actions()
	numActions := len(actions)
	if numActions == 0 {
		panic(fmt.Sprintf("selectAction: no actions available from %v", c))
	}

	// Find the greedy action
	greedyAction := floats.MaxIdx(c.ActionValues())

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(numActions)
	actionProbabilites := make([]float64, numActions)
	for i := range actionProbabilites {
		actionProbabilites[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilites[greedyAction] += (1.0 - p.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities and sample an action
	dist := distuv.NewCategorical(actionProbabilites, p.seed)
	return actions[int(dist.Rand())]
}
