package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, Dim(strings.Repeat("-", len(title)*2)))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), BoldCyan(title))
	_, _ = fmt.Fprintln(w, Dim(strings.Repeat("-", len(title)*2)))
}

// OutputGantt prints one cell per timeline slice with the slice start
// times underneath and the final stop time at the end.
func OutputGantt(w io.Writer, response responses.ScheduleResponse) {
	gantt := response.Timeline
	_, _ = fmt.Fprintln(w, Bold("Gantt schedule"))
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].ProcessID)
		padding := ""
		if n := (8 - len(pid)) / 2; n > 0 {
			padding = strings.Repeat(" ", n)
		}
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// OutputSchedule prints the title, Gantt chart and per-process table of one run.
func OutputSchedule(w io.Writer, title string, response responses.ScheduleResponse) {
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	OutputGantt(w, response)

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}

	_, _ = fmt.Fprintln(w, Bold("Schedule table"))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Completion", "Waiting", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// OutputComparison prints one row of averages per algorithm.
func OutputComparison(w io.Writer, comparison []responses.ScheduleResponse) {
	outputTitle(w, "Comparative analysis")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg waiting", "Avg turnaround", "Avg response", "Utilization", "Throughput"})
	best := bestWaiting(comparison)
	for i, r := range comparison {
		name := strings.ToUpper(r.Algorithm)
		if i == best {
			name += " *"
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
	if best >= 0 {
		_, _ = fmt.Fprintf(w, "%s lowest average waiting time: %s\n", BoldGreen("*"), BoldYellow(strings.ToUpper(comparison[best].Algorithm)))
	}
}

// bestWaiting returns the index of the lowest average waiting time, the
// first one on ties, or -1 for no responses.
func bestWaiting(comparison []responses.ScheduleResponse) int {
	best := -1
	for i, r := range comparison {
		if best < 0 || r.AverageWaitingTime < comparison[best].AverageWaitingTime {
			best = i
		}
	}
	return best
}
