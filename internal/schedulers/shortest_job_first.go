package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: once picked, a job runs to
// completion. Among arrived jobs the shortest burst wins; ties go to the
// earlier arrival, then to input order.
func ScheduleShortestJobFirst(processes []core.Process) (*Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}

	jobs := sortByArrival(processes)
	cpu := core.NewCpu()
	rows := make([]core.ResultRow, 0, len(jobs))
	readyQueue := make(shortestJobQueue, 0, len(jobs))

	next := 0
	for len(rows) < len(jobs) {
		// admit everything that has arrived by now
		for next < len(jobs) && jobs[next].process.ArrivalTime <= cpu.Clock() {
			readyQueue.AddJob(jobs[next])
			next++
		}

		if readyQueue.Len() == 0 {
			cpu.IdleUntil(jobs[next].process.ArrivalTime)
			continue
		}

		p := readyQueue.NextJob().process
		rows = append(rows, core.Complete(p, cpu.Execute(p, p.BurstTime)))
	}

	return newResult(ShortestJobFirst, cpu, rows), nil
}
