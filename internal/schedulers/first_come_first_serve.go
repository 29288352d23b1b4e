package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes strictly in arrival order.
func ScheduleFirstComeFirstServe(processes []core.Process) (*Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return nil, err
	}

	cpu := core.NewCpu()
	rows := make([]core.ResultRow, 0, len(processes))
	for _, entry := range sortByArrival(processes) {
		p := entry.process
		cpu.IdleUntil(p.ArrivalTime)
		rows = append(rows, core.Complete(p, cpu.Execute(p, p.BurstTime)))
	}

	return newResult(FirstComeFirstServe, cpu, rows), nil
}
