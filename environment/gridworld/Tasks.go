package gridworld

import "fmt"

// Tag determines the role a cell plays in the task of reaching the goal
type Tag int

const (
	Normal Tag = iota
	Wall
	Forbidden
	Goal
)

// Rewards collected when leaving a cell of each tag. Wall cells are
// never entered, so their reward is never collected.
const (
	TimeStepReward  float64 = -0.1
	ForbiddenReward float64 = -100.0
	GoalReward      float64 = 100.0
)

var rewards = map[Tag]float64{
	Normal:    TimeStepReward,
	Wall:      0.0,
	Forbidden: ForbiddenReward,
	Goal:      GoalReward,
}

// Reward returns the reward for leaving a cell with tag t
func (t Tag) Reward() float64 {
	r, ok := rewards[t]
	if !ok {
		panic(fmt.Sprintf("reward: no such tag %d", int(t)))
	}
	return r
}

// Terminal returns whether an episode ends upon reaching a cell with
// tag t
func (t Tag) Terminal() bool {
	return t == Forbidden || t == Goal
}

func (t Tag) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Wall:
		return "Wall"
	case Forbidden:
		return "Forbidden"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}
