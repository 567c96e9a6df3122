// Package qlearning implements tabular Q-learning on a gridworld.
//
// The agent follows an ε-greedy behaviour policy and after every move
// updates the value of the action it took towards the reward of the
// cell it left plus the discounted value of the best action in the
// cell it arrived at. Once an entire episode passes without any value
// changing, exploration is switched off for the rest of the run.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gridq/agent"
	"github.com/samuelfneumann/gridq/agent/tabular/policy"
	"github.com/samuelfneumann/gridq/environment"
	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/samuelfneumann/gridq/experiment/savers"
	ts "github.com/samuelfneumann/gridq/timestep"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	grid      *gridworld.GridWorld
	position  *gridworld.Cell
	behaviour agent.EGreedyPolicy
	target    agent.Policy

	learningRate float64
	stepLimit    environment.Ender

	stepNumber int
	inEpisode  bool
	savers     []savers.Saver
}

// New creates a new QLearning agent which learns on g. The actions of
// g are (re)set, so all action values start at zero. The seed
// determines all random action selection.
func New(g *gridworld.GridWorld, c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	g.SetActions()
	start := g.Start()
	if len(start.Actions()) == 0 {
		return nil, fmt.Errorf("new: no actions available from start "+
			"cell %d", start.Index())
	}

	return &QLearning{
		grid:         g,
		position:     start,
		behaviour:    behaviour,
		target:       policy.NewGreedy(),
		learningRate: c.LearningRate,
		stepLimit:    environment.NewStepLimit(c.maxEpisodeSteps()),
	}, nil
}

// Register registers a savers.Saver with the agent so that the
// timesteps generated while learning are tracked
func (q *QLearning) Register(s savers.Saver) {
	q.savers = append(q.savers, s)
}

// Grid returns the gridworld the agent learns on
func (q *QLearning) Grid() *gridworld.GridWorld {
	return q.grid
}

// Position returns the cell the agent currently occupies
func (q *QLearning) Position() *gridworld.Cell {
	return q.position
}

// Epsilon returns the current exploration rate of the behaviour policy
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}

// Step takes a single action from the agent's current cell, updates
// the value of that action, and moves the agent. Step returns whether
// the value of the action was left unchanged by the update.
//
// If no episode is in progress, Step begins a new one at the agent's
// current cell.
func (q *QLearning) Step() bool {
	if !q.inEpisode {
		q.begin()
	}
	unchanged, step := q.step()
	q.track(step)
	return unchanged
}

func (q *QLearning) step() (bool, ts.TimeStep) {
	from := q.position
	action := q.behaviour.SelectAction(from)
	dest := action.Dest()

	// Bootstrap from the best action of the next cell
	qMax := q.target.SelectAction(dest).Value()

	old := action.Value()
	α, γ := q.learningRate, q.grid.Discount()
	newValue := (1-α)*old + α*(from.Reward()+γ*qMax)
	action.SetValue(newValue)

	q.position = dest
	q.stepNumber++

	stepType := ts.Mid
	if from.Terminal() {
		stepType = ts.Last
	}
	step := ts.New(stepType, from.Reward(), γ, dest.Index(), q.stepNumber)
	step.Changed = old != newValue
	if from.Terminal() {
		step.SetEnd(ts.TerminalStateReached)
	}

	return old == newValue, step
}

// Next runs a single episode. The agent is placed on the start cell and
// steps until it leaves a terminal cell. Next returns whether no action
// value changed during the episode.
//
// Episodes which do not reach a terminal cell within the step cutoff
// are ended early and never count as converged.
func (q *QLearning) Next() bool {
	q.reset()

	converged := true
	for q.position.Tag() == gridworld.Normal {
		unchanged, step := q.step()
		converged = converged && unchanged

		if q.position.Tag() == gridworld.Normal && q.stepLimit.End(&step) {
			q.track(step)
			return false
		}
		q.track(step)
	}

	// Leave the terminal cell
	unchanged := q.Step()
	return converged && unchanged
}

// Run runs at most numIter episodes and returns the number of episodes
// run.
//
// After the first episode in which no action value changes, the
// behaviour policy becomes greedy for the rest of the run. Once an
// episode run with the greedy policy changes no value, every later
// episode would follow the same path with the same values, so Run
// returns early.
func (q *QLearning) Run(numIter int) int {
	for i := 0; i < numIter; i++ {
		if !q.Next() {
			continue
		}

		if q.behaviour.Epsilon() == 0 {
			return i + 1
		}
		q.behaviour.SetEpsilon(0)
	}
	return numIter
}

// reset places the agent on the start cell and begins a new episode
func (q *QLearning) reset() {
	q.position = q.grid.Start()
	q.begin()
}

// begin starts a new episode at the agent's current cell
func (q *QLearning) begin() {
	q.stepNumber = 0
	q.track(ts.New(ts.First, 0, q.grid.Discount(), q.position.Index(), 0))
}

// track sends a timestep to each registered saver
func (q *QLearning) track(t ts.TimeStep) {
	q.inEpisode = !t.Last()
	for _, saver := range q.savers {
		saver.Track(t)
	}
}
