package main

import (
	"fmt"
	"strconv"
)

// Output modes
const (
	policyMode = "p"
	valueMode  = "q"
)

// query is the board and output requested on the command line. All
// indices are 0-based.
type query struct {
	goal      int
	forbidden int
	wall      int
	mode      string
	index     int
}

// parseQuery parses the positional arguments
//
//	<goal> <forbidden> <wall> p
//	<goal> <forbidden> <wall> q <index>
//
// where indices are 1-based and must lie in [1, n]
func parseQuery(args []string, n int) (query, error) {
	if len(args) != 4 && len(args) != 5 {
		return query{}, fmt.Errorf("expected 4 or 5 arguments, got %d",
			len(args))
	}

	var q query
	q.mode = args[3]
	switch q.mode {
	case policyMode:
		if len(args) != 4 {
			return query{}, fmt.Errorf("policy mode takes no cell index")
		}
	case valueMode:
		if len(args) != 5 {
			return query{}, fmt.Errorf("value mode requires a cell index")
		}
	default:
		return query{}, fmt.Errorf("mode must be %q or %q, got %q",
			policyMode, valueMode, q.mode)
	}

	indices := make([]int, 0, 4)
	for _, arg := range append(args[:3:3], args[4:]...) {
		i, err := parseIndex(arg, n)
		if err != nil {
			return query{}, err
		}
		indices = append(indices, i)
	}
	q.goal, q.forbidden, q.wall = indices[0], indices[1], indices[2]
	if len(indices) == 4 {
		q.index = indices[3]
	}

	if q.goal == q.forbidden || q.goal == q.wall || q.forbidden == q.wall {
		return query{}, fmt.Errorf("goal, forbidden, and wall indices "+
			"must be distinct, got %d, %d, %d", q.goal+1, q.forbidden+1,
			q.wall+1)
	}

	return q, nil
}

// parseIndex parses a 1-based cell index in [1, n] and returns it
// 0-based
func parseIndex(arg string, n int) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("empty cell index")
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("cell index %q is not a number", arg)
		}
	}

	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("cell index %q: %v", arg, err)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("cell index %d out of range [1, %d]", i, n)
	}
	return i - 1, nil
}
