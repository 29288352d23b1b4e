package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin gives each ready process at most timeQuantum units
// per turn. Processes arriving during a slice are queued ahead of the
// process that was just preempted.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (*Result, error) {
	if timeQuantum <= 0 {
		return nil, &InvalidQuantumError{Quantum: timeQuantum}
	}
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}

	jobs := sortByArrival(processes)
	cpu := core.NewCpu()
	rows := make([]core.ResultRow, 0, len(jobs))
	roundRobinQueue := newProcessQueue()

	next := 0
	admitArrived := func() {
		for next < len(jobs) && jobs[next].process.ArrivalTime <= cpu.Clock() {
			p := jobs[next].process
			roundRobinQueue.AddToEnd(&roundRobinEntry{process: p, remaining: p.BurstTime})
			next++
		}
	}

	for roundRobinQueue.Len() > 0 || next < len(jobs) {
		admitArrived()

		entry, ok := roundRobinQueue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(jobs[next].process.ArrivalTime)
			continue
		}

		run := timeQuantum
		if entry.remaining < run {
			run = entry.remaining
		}
		cpu.Execute(entry.process, run)
		entry.remaining -= run

		if entry.remaining == 0 {
			rows = append(rows, core.Complete(entry.process, cpu.Clock()))
			continue
		}

		// context switch
		admitArrived()
		roundRobinQueue.AddToEnd(entry)
	}

	result := newResult(RoundRobin, cpu, rows)
	result.Quantum = timeQuantum
	return result, nil
}
