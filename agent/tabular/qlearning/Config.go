package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gridq/environment/gridworld"
)

// DefaultMaxEpisodeSteps is the number of moves from Normal cells
// after which an episode is cut off when Config.MaxEpisodeSteps is 0
const DefaultMaxEpisodeSteps int = 10_000

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon      float64 // epislon for behaviour policy
	LearningRate float64

	// MaxEpisodeSteps cuts off episodes which have not reached a
	// terminal cell after this many steps
	MaxEpisodeSteps int
}

// NewConfig returns a Config with the default episode cutoff
func NewConfig(ɛ, learningRate float64) Config {
	return Config{
		Epsilon:         ɛ,
		LearningRate:    learningRate,
		MaxEpisodeSteps: DefaultMaxEpisodeSteps,
	}
}

// CreateAgent creates the agent from the Config. The actions of g are
// (re)set, so all action values start at zero.
func (c Config) CreateAgent(g *gridworld.GridWorld,
	seed uint64) (*QLearning, error) {
	return New(g, c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon %v not in [0, 1]", c.Epsilon)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate %v not in (0, 1]", c.LearningRate)
	}
	if c.MaxEpisodeSteps < 0 {
		return fmt.Errorf("max episode steps cannot be negative")
	}
	return nil
}

func (c Config) maxEpisodeSteps() int {
	if c.MaxEpisodeSteps == 0 {
		return DefaultMaxEpisodeSteps
	}
	return c.MaxEpisodeSteps
}
