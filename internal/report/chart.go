package report

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"cpu-scheduler/internal/responses"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var (
	waitingColor    = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	turnaroundColor = color.RGBA{R: 219, G: 68, B: 55, A: 255}
)

// ComparisonChart draws average waiting and turnaround time side by side
// for every algorithm.
func ComparisonChart(comparison []responses.ScheduleResponse) (*plot.Plot, error) {
	if len(comparison) == 0 {
		return nil, fmt.Errorf("comparison chart: no results")
	}

	names := make([]string, 0, len(comparison))
	waiting := make(plotter.Values, 0, len(comparison))
	turnaround := make(plotter.Values, 0, len(comparison))
	for _, r := range comparison {
		names = append(names, strings.ToUpper(r.Algorithm))
		waiting = append(waiting, r.AverageWaitingTime)
		turnaround = append(turnaround, r.AverageTurnAroundTime)
	}

	p := plot.New()
	p.Title.Text = "Scheduling algorithm comparison"
	p.Y.Label.Text = "Time"

	barWidth := vg.Points(30)
	waitingBars, err := plotter.NewBarChart(waiting, barWidth)
	if err != nil {
		return nil, fmt.Errorf("waiting bars: %w", err)
	}
	waitingBars.Color = waitingColor
	waitingBars.Offset = -barWidth / 2

	turnaroundBars, err := plotter.NewBarChart(turnaround, barWidth)
	if err != nil {
		return nil, fmt.Errorf("turnaround bars: %w", err)
	}
	turnaroundBars.Color = turnaroundColor
	turnaroundBars.Offset = barWidth / 2

	p.Add(waitingBars, turnaroundBars)
	p.Legend.Add("Average waiting time", waitingBars)
	p.Legend.Add("Average turnaround time", turnaroundBars)
	p.Legend.Top = true
	p.NominalX(names...)

	return p, nil
}

// SaveChart writes the comparison chart to path; the extension picks the format.
func SaveChart(path string, comparison []responses.ScheduleResponse) error {
	p, err := ComparisonChart(comparison)
	if err != nil {
		return err
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

// WriteChart renders the comparison chart to w in the given format (png, svg, ...).
func WriteChart(w io.Writer, format string, comparison []responses.ScheduleResponse) error {
	p, err := ComparisonChart(comparison)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
