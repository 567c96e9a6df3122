package qlearning

import (
	"testing"

	"github.com/samuelfneumann/gridq/environment/envconfig"
	"github.com/samuelfneumann/gridq/environment/gridworld"
	"github.com/samuelfneumann/gridq/experiment/savers"
	ts "github.com/samuelfneumann/gridq/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a savers.Saver which keeps every timestep it tracks
type recorder struct {
	steps []ts.TimeStep
}

func (r *recorder) Track(t ts.TimeStep) { r.steps = append(r.steps, t) }
func (r *recorder) Save() error         { return nil }

func (r *recorder) last() *ts.TimeStep { return &r.steps[len(r.steps)-1] }

func newAgent(t testing.TB, goal, forbidden, wall int, c Config,
	seed uint64) *QLearning {
	t.Helper()
	g, err := envconfig.NewConfig(goal, forbidden, wall, 0.5).Create()
	require.NoError(t, err)

	q, err := New(g, c, seed)
	require.NoError(t, err)
	return q
}

func TestNewInvalidConfig(t *testing.T) {
	g, err := envconfig.NewConfig(5, 6, 9, 0.5).Create()
	require.NoError(t, err)

	for _, c := range []Config{
		{Epsilon: -0.1, LearningRate: 0.1},
		{Epsilon: 1.1, LearningRate: 0.1},
		{Epsilon: 0.1, LearningRate: 0},
		{Epsilon: 0.1, LearningRate: 1.5},
		{Epsilon: 0.1, LearningRate: 0.1, MaxEpisodeSteps: -1},
	} {
		_, err := New(g, c, 1)
		assert.Error(t, err, "%+v", c)
	}
}

func TestStepUpdate(t *testing.T) {
	q := newAgent(t, 5, 6, 9, Config{Epsilon: 0, LearningRate: 0.5}, 1)
	g := q.Grid()

	// Cell 4's action towards the goal bootstraps the update
	for _, a := range g.Cell(4).Actions() {
		if a.Dest().Index() == 5 {
			a.SetValue(10)
		}
	}

	// All of cell 0's actions are 0, so the first one (towards cell 4)
	// is greedy
	unchanged := q.Step()
	assert.False(t, unchanged)
	assert.Equal(t, 4, q.Position().Index())

	want := 0.5*0 + 0.5*(gridworld.TimeStepReward+0.5*10)
	assert.InDelta(t, want, g.Cell(0).Actions()[0].Value(), 1e-12)
	assert.Zero(t, g.Cell(0).Actions()[1].Value())
}

func TestStepUnchanged(t *testing.T) {
	q := newAgent(t, 5, 6, 9, Config{Epsilon: 0, LearningRate: 1}, 1)
	g := q.Grid()

	for _, a := range g.Cell(4).Actions() {
		a.SetValue(10)
	}
	g.Cell(0).Actions()[0].SetValue(gridworld.TimeStepReward + 0.5*10)

	assert.True(t, q.Step())
	assert.Equal(t, 4, q.Position().Index())
}

func TestNextEndsAtStart(t *testing.T) {
	q := newAgent(t, 5, 6, 9, Config{Epsilon: 0, LearningRate: 0.5}, 1)
	r := &recorder{}
	q.Register(r)

	assert.False(t, q.Next())
	assert.Same(t, q.Grid().Start(), q.Position())

	require.NotEmpty(t, r.steps)
	assert.True(t, r.steps[0].First())
	for i, step := range r.steps {
		assert.Equal(t, i, step.Number)
	}

	last := r.last()
	assert.True(t, last.Last())
	assert.Equal(t, ts.TerminalStateReached, last.EndType())
	assert.Equal(t, gridworld.GoalReward, last.Reward)
	assert.Equal(t, 0, last.Observation)

	// The step before the last one reached the goal
	assert.Equal(t, 5, r.steps[len(r.steps)-2].Observation)
}

func TestStepBeginsEpisode(t *testing.T) {
	q := newAgent(t, 5, 6, 9, Config{Epsilon: 0, LearningRate: 0.5}, 1)
	returns := savers.NewReturn("")
	r := &recorder{}
	q.Register(returns)
	q.Register(r)

	require.NotPanics(t, func() { q.Step() })
	require.Len(t, r.steps, 2)
	assert.True(t, r.steps[0].First())
	assert.Equal(t, 0, r.steps[0].Observation)
	assert.Equal(t, 1, r.steps[1].Number)

	// Finishing the open episode and stepping again starts a new one
	// from the start cell
	require.NotPanics(t, func() { q.Next() })
	r.steps = nil
	require.NotPanics(t, func() { q.Step() })
	require.Len(t, r.steps, 2)
	assert.True(t, r.steps[0].First())
	assert.Equal(t, 1, r.steps[1].Number)

	// Within an episode no new First timestep is emitted
	require.NotPanics(t, func() { q.Step() })
	require.Len(t, r.steps, 3)
	assert.Equal(t, 2, r.last().Number)
}

func TestNextStepLimit(t *testing.T) {
	c := Config{Epsilon: 0, LearningRate: 0.5, MaxEpisodeSteps: 1}
	q := newAgent(t, 11, 10, 9, c, 1)
	r := &recorder{}
	q.Register(r)

	assert.False(t, q.Next())
	assert.Equal(t, gridworld.Normal, q.Position().Tag())

	require.Len(t, r.steps, 2)
	assert.True(t, r.last().Last())
	assert.Equal(t, ts.StepLimitReached, r.last().EndType())
}

func TestRunSwitchesToGreedy(t *testing.T) {
	q := newAgent(t, 0, 1, 2, NewConfig(0.1, 0.1), 7)

	n := q.Run(10_000)
	assert.Less(t, n, 10_000)
	assert.Zero(t, q.Epsilon())

	g := q.Grid()
	values := g.Values(0)
	policy := g.Policy()
	for i := 0; i < 5; i++ {
		assert.Equal(t, values, g.Values(0))
		assert.Equal(t, policy, g.Policy())
	}

	// Learning has converged, so further episodes change nothing
	assert.Equal(t, 1, q.Run(100))
	assert.Equal(t, values, g.Values(0))
	assert.Equal(t, policy, g.Policy())
}

func TestRunLearnsPathToGoal(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		q := newAgent(t, 5, 6, 9, NewConfig(0.1, 0.1), seed)
		lengths := savers.NewEpisodeLength("")
		q.Register(lengths)

		n := q.Run(10_000)
		assert.Len(t, lengths.Lengths(), n)

		g := q.Grid()
		r, c := g.Dims()
		path := g.Rollout(g.Start().Index(), r*c)

		// Every cell the greedy policy passes through leads to the goal
		for i, cell := range path {
			assert.NotEqual(t, gridworld.Forbidden, cell.Tag(),
				"seed %d", seed)

			from := g.Rollout(cell.Index(), r*c)
			end := from[len(from)-1]
			assert.Equal(t, gridworld.Goal, end.Tag(),
				"seed %d: greedy policy from cell %d (step %d) does not "+
					"reach the goal", seed, cell.Index(), i)
		}
	}
}

func TestReproducible(t *testing.T) {
	a := newAgent(t, 5, 6, 9, NewConfig(0.1, 0.1), 42)
	b := newAgent(t, 5, 6, 9, NewConfig(0.1, 0.1), 42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
	for i := 0; i < a.Grid().Len(); i++ {
		assert.Equal(t, a.Grid().Values(i), b.Grid().Values(i))
	}
}

func BenchmarkNext(b *testing.B) {
	q := newAgent(b, 5, 6, 9, NewConfig(0.1, 0.1), 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Next()
	}
}
