package savers

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	ts "github.com/samuelfneumann/gridq/timestep"
)

// Chart tracks the return and length of each episode and saves them as
// line charts on an HTML page
type Chart struct {
	returns  *Return
	lengths  *EpisodeLength
	filename string
}

// NewChart returns a new Chart saver which renders its page to filename
func NewChart(filename string) *Chart {
	return &Chart{
		returns:  NewReturn(""),
		lengths:  NewEpisodeLength(""),
		filename: filename,
	}
}

// Track caches the reward of the timestep and, on the last step of an
// episode, the episode's return and length
func (c *Chart) Track(t ts.TimeStep) {
	c.returns.Track(t)
	c.lengths.Track(t)
}

// Save renders the charts of all finished episodes to disk
func (c *Chart) Save() error {
	returns := c.returns.Returns()
	lengths := c.lengths.Lengths()

	episodes := make([]string, len(returns))
	returnData := make([]opts.LineData, len(returns))
	lengthData := make([]opts.LineData, len(lengths))
	for i := range returns {
		episodes[i] = fmt.Sprint(i + 1)
		returnData[i] = opts.LineData{Value: returns[i]}
		lengthData[i] = opts.LineData{Value: lengths[i]}
	}

	page := components.NewPage()
	page.AddCharts(
		line("Episodic return", episodes, "return", returnData),
		line("Episode length", episodes, "steps", lengthData),
	)

	f, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: %v", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

func line(title string, x []string, name string,
	data []opts.LineData) *charts.Line {
	l := charts.NewLine()
	l.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	l.SetXAxis(x).AddSeries(name, data)
	return l
}
