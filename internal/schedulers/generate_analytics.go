package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func GenerateResponse(result *Result) (responses.ScheduleResponse, error) {
	summary, err := util.CalculateAverage(result.Rows)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	details := generateProcessDetails(result.Rows, result.Timeline)
	averageResponseTime, err := util.CalculateAverageResponse(details)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	var utilization, throughput float64
	if result.Cpu.TotalTime > 0 {
		utilization = float64(result.Cpu.UtilizationTime) / float64(result.Cpu.TotalTime)
		throughput = float64(len(result.Rows)) / float64(result.Cpu.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TimeQuantum:           result.Quantum,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    summary.AverageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: summary.AverageTurnaroundTime,
		Details:               details,
		Timeline:              result.Timeline,
	}, nil
}

// GenerateComparison builds one response per result, keeping their order.
func GenerateComparison(results []*Result) ([]responses.ScheduleResponse, error) {
	out := make([]responses.ScheduleResponse, 0, len(results))
	for _, result := range results {
		response, err := GenerateResponse(result)
		if err != nil {
			return nil, err
		}
		out = append(out, response)
	}
	return out, nil
}

// generateProcessDetails takes the response time of each process from its
// first slice on the timeline.
func generateProcessDetails(rows []core.ResultRow, timeline []core.TimeSlice) []responses.ProcessResponse {
	firstRun := make(map[int]int, len(rows))
	for _, slice := range timeline {
		if _, ok := firstRun[slice.ProcessID]; !ok {
			firstRun[slice.ProcessID] = slice.Start
		}
	}

	details := make([]responses.ProcessResponse, 0, len(rows))
	for _, row := range rows {
		details = append(details, responses.ProcessResponse{
			ProcessId:      row.ID,
			ArrivalTime:    row.ArrivalTime,
			BurstTime:      row.BurstTime,
			CompletionTime: row.CompletionTime,
			ResponseTime:   firstRun[row.ID] - row.ArrivalTime,
			TurnAroundTime: row.TurnaroundTime,
			WaitingTime:    row.WaitingTime,
		})
	}
	return details
}
