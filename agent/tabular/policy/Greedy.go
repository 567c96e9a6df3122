package policy

import "github.com/samuelfneumann/gridq/environment/gridworld"

// Greedy always selects the action with the largest value, breaking
// ties in favour of the first such action
type Greedy struct{}

// NewGreedy creates a new Greedy policy
func NewGreedy() Greedy {
	return Greedy{}
}

// SelectAction returns the greedy action of c, or nil if c has no
// actions
func (Greedy) SelectAction(c *gridworld.Cell) *gridworld.Action {
	return c.Greedy()
}
