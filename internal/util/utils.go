package util

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// UndefinedAverageError is returned when averaging an empty result set.
type UndefinedAverageError struct {
	Field string
}

func (e *UndefinedAverageError) Error() string {
	return "average " + e.Field + " is undefined for an empty result set"
}

func CalculateAverage(rows []core.ResultRow) (core.RunSummary, error) {
	if len(rows) == 0 {
		return core.RunSummary{}, &UndefinedAverageError{Field: "waiting/turnaround time"}
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, row := range rows {
		waitingTimeSum += float64(row.WaitingTime)
		turnAroundTimeSum += float64(row.TurnaroundTime)
	}

	count := float64(len(rows))
	return core.RunSummary{
		AverageWaitingTime:    waitingTimeSum / count,
		AverageTurnaroundTime: turnAroundTimeSum / count,
	}, nil
}

func CalculateAverageResponse(details []responses.ProcessResponse) (float64, error) {
	if len(details) == 0 {
		return 0, &UndefinedAverageError{Field: "response time"}
	}

	var responseTimeSum float64
	for _, d := range details {
		responseTimeSum += float64(d.ResponseTime)
	}
	return responseTimeSum / float64(len(details)), nil
}
