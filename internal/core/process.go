package core

import "fmt"

// Process is a unit of work submitted to the simulated CPU.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
}

// ResultRow is the outcome of one process after a simulation run.
type ResultRow struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
}

// RunSummary holds the averages of a complete run.
type RunSummary struct {
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
}

// Complete derives the waiting and turnaround time of p finishing at completionTime.
func Complete(p Process, completionTime int) ResultRow {
	turnaround := completionTime - p.ArrivalTime
	return ResultRow{
		ID:             p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: completionTime,
		WaitingTime:    turnaround - p.BurstTime,
		TurnaroundTime: turnaround,
	}
}

type InvalidProcessError struct {
	ID     int
	Reason string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("invalid process %d: %s", e.ID, e.Reason)
}

// ValidateProcesses checks arrival and burst bounds and id uniqueness.
// An empty set is valid.
func ValidateProcesses(processes []Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.ArrivalTime < 0 {
			return &InvalidProcessError{ID: p.ID, Reason: fmt.Sprintf("negative arrival time %d", p.ArrivalTime)}
		}
		if p.BurstTime <= 0 {
			return &InvalidProcessError{ID: p.ID, Reason: fmt.Sprintf("non-positive burst time %d", p.BurstTime)}
		}
		if _, ok := seen[p.ID]; ok {
			return &InvalidProcessError{ID: p.ID, Reason: "duplicate id"}
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
