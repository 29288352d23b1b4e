package schedulers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cpu-scheduler/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "rr"
)

// Algorithms lists every supported discipline in comparison order.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin}

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

type InvalidQuantumError struct {
	Quantum int
}

func (e *InvalidQuantumError) Error() string {
	return fmt.Sprintf("invalid time quantum %d: must be a positive integer", e.Quantum)
}

// Result is the outcome of one simulation run. Rows are in completion order.
type Result struct {
	Algorithm Algorithm
	Quantum   int
	Rows      []core.ResultRow
	Timeline  []core.TimeSlice
	Cpu       core.CpuMetric
}

func newResult(alg Algorithm, cpu *core.Cpu, rows []core.ResultRow) *Result {
	return &Result{
		Algorithm: alg,
		Rows:      rows,
		Timeline:  cpu.Timeline(),
		Cpu:       cpu.Metric(),
	}
}

// arrivalEntry remembers where a process sat in the caller's input.
type arrivalEntry struct {
	process core.Process
	index   int
}

// sortByArrival returns a stable, arrival-ordered copy of processes.
func sortByArrival(processes []core.Process) []arrivalEntry {
	entries := make([]arrivalEntry, len(processes))
	for i, p := range processes {
		entries[i] = arrivalEntry{process: p, index: i}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].process.ArrivalTime < entries[j].process.ArrivalTime
	})
	return entries
}

// Schedule runs a single algorithm. quantum is ignored unless alg is RoundRobin.
func Schedule(alg Algorithm, processes []core.Process, quantum int) (*Result, error) {
	switch alg {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, quantum)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// CompareAll runs every algorithm over the same input concurrently and
// returns the results in Algorithms order.
func CompareAll(processes []core.Process, quantum int) ([]*Result, error) {
	results := make([]*Result, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, alg := range Algorithms {
		go func(i int, alg Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Schedule(alg, processes, quantum)
		}(i, alg)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Algorithms[i], err)
		}
	}
	return results, nil
}
