package gridworld

import "fmt"

// SingleStart starts every episode in the same cell
type SingleStart struct {
	index int
}

// NewSingleStart returns a SingleStart at flat index i of a gridworld
// with r rows and c columns
func NewSingleStart(i, r, c int) (*SingleStart, error) {
	if i < 0 || i >= r*c {
		return nil, fmt.Errorf("newSingleStart: start index %d out of "+
			"range [0, %d)", i, r*c)
	}
	return &SingleStart{i}, nil
}

// Start returns the flat index of the starting cell
func (s *SingleStart) Start() int {
	return s.index
}
