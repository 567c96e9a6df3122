// Package envconfig provides configuration structs for configuring
// gridworld boards. Board configurations in this package are JSON
// serializable.
package envconfig

import (
	"fmt"

	"github.com/samuelfneumann/gridq/environment/gridworld"
)

// Config describes a gridworld board: its dimensions, the cell episodes
// start in, the special cells, and the discount factor. All indices are
// flat, row-major, and 0-based.
type Config struct {
	Rows      int
	Cols      int
	Start     int
	Goal      int
	Forbidden int
	Walls     []int
	Discount  float64
}

// NewConfig returns a new Config for the default board dimensions with
// a single wall, starting episodes in the first cell
func NewConfig(goal, forbidden, wall int, discount float64) Config {
	return Config{
		Rows:      gridworld.Rows,
		Cols:      gridworld.Cols,
		Start:     0,
		Goal:      goal,
		Forbidden: forbidden,
		Walls:     []int{wall},
		Discount:  discount,
	}
}

// Validate returns an error describing why the Config is invalid, or
// nil if it is valid
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("invalid dimensions (%d, %d)", c.Rows, c.Cols)
	}
	n := c.Rows * c.Cols

	if len(c.Walls)+2 > n {
		return fmt.Errorf("%d walls do not fit on a board of %d cells",
			len(c.Walls), n)
	}

	seen := make(map[int]string, len(c.Walls)+2)
	check := func(name string, i int) error {
		if i < 0 || i >= n {
			return fmt.Errorf("%s index %d out of range [0, %d)", name, i, n)
		}
		if other, ok := seen[i]; ok {
			return fmt.Errorf("%s index %d is already the %s", name, i, other)
		}
		seen[i] = name
		return nil
	}

	if err := check("goal", c.Goal); err != nil {
		return err
	}
	if err := check("forbidden", c.Forbidden); err != nil {
		return err
	}
	for _, w := range c.Walls {
		if err := check("wall", w); err != nil {
			return err
		}
	}

	if c.Start < 0 || c.Start >= n {
		return fmt.Errorf("start index %d out of range [0, %d)", c.Start, n)
	}
	if seen[c.Start] == "wall" {
		return fmt.Errorf("start index %d is a wall", c.Start)
	}

	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount %v not in [0, 1]", c.Discount)
	}
	return nil
}

// Tags returns the mapping from flat index to tag described by the
// Config
func (c Config) Tags() map[int]gridworld.Tag {
	tags := map[int]gridworld.Tag{
		c.Goal:      gridworld.Goal,
		c.Forbidden: gridworld.Forbidden,
	}
	for _, w := range c.Walls {
		tags[w] = gridworld.Wall
	}
	return tags
}

// Create returns the gridworld described by the Config. The actions of
// the gridworld are set.
func (c Config) Create() (*gridworld.GridWorld, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	g, err := gridworld.New(c.Rows, c.Cols, c.Start, c.Tags(), c.Discount)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	g.SetActions()

	return g, nil
}
