package savers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/gridq/timestep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// episode returns the timesteps of an episode collecting rewards
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0.5, 0, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, 0.5, 0, i+1))
	}
	return steps
}

func TestReturn(t *testing.T) {
	dir := t.TempDir()
	r := NewReturn(filepath.Join(dir, "returns.bin"))

	for _, step := range episode(-0.1, -0.1, 100) {
		r.Track(step)
	}
	for _, step := range episode(-100) {
		r.Track(step)
	}

	require.Len(t, r.Returns(), 2)
	assert.InDelta(t, 99.8, r.Returns()[0], 1e-9)
	assert.Equal(t, -100.0, r.Returns()[1])

	require.NoError(t, r.Save())
	data, err := LoadData(filepath.Join(dir, "returns.bin"))
	require.NoError(t, err)
	assert.Equal(t, r.Returns(), data)
}

func TestReturnNonSequential(t *testing.T) {
	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 0.5, 0, 0))
	assert.Panics(t, func() { r.Track(ts.New(ts.Mid, 0, 0.5, 0, 3)) })
}

func TestReturnUnfinishedEpisode(t *testing.T) {
	r := NewReturn("")
	unfinished := episode(-0.1, -0.1, 100)
	for _, step := range unfinished[:2] {
		r.Track(step)
	}
	for _, step := range episode(-100) {
		r.Track(step)
	}
	assert.Equal(t, []float64{-100}, r.Returns())
}

func TestEpisodeLength(t *testing.T) {
	dir := t.TempDir()
	e := NewEpisodeLength(filepath.Join(dir, "lengths.bin"))

	for _, step := range append(episode(1, 2, 3), episode(4)...) {
		e.Track(step)
	}
	assert.Equal(t, []int{3, 1}, e.Lengths())

	require.NoError(t, e.Save())
	data, err := LoadLengths(filepath.Join(dir, "lengths.bin"))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, data)
}

func TestSaveErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "data.bin")
	assert.Error(t, NewReturn(missing).Save())

	_, err := LoadData(missing)
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	var out bytes.Buffer
	p := NewProgressTo(&out, 10, 2, 0)
	for _, step := range append(episode(1), episode(2)...) {
		p.Track(step)
	}
	assert.Equal(t, 1.0, p.bar.Progress())
	assert.NoError(t, p.Save())
	assert.Contains(t, out.String(), "100.00%")
}

func TestProgressStoppedEarly(t *testing.T) {
	var out bytes.Buffer
	p := NewProgressTo(&out, 10, 100, 10)
	for _, step := range episode(1, 2) {
		p.Track(step)
	}
	assert.Equal(t, 0.01, p.bar.Progress())

	require.NoError(t, p.Save())
	assert.Equal(t, 1.0, p.bar.Progress())
	assert.Contains(t, out.String(), "100.00%")
}

func TestChart(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "chart.html")
	c := NewChart(filename)

	for _, step := range append(episode(-0.1, 100), episode(-100)...) {
		c.Track(step)
	}
	require.NoError(t, c.Save())

	page, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Episodic return")
	assert.Contains(t, string(page), "Episode length")
}

func TestChartSaveError(t *testing.T) {
	c := NewChart(filepath.Join(t.TempDir(), "missing", "chart.html"))
	assert.Error(t, c.Save())
}
