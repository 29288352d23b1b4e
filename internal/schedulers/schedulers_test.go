package schedulers

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

// completions maps process id to completion time, in completion order.
func completions(rows []core.ResultRow) ([]int, map[int]int) {
	order := make([]int, 0, len(rows))
	byID := make(map[int]int, len(rows))
	for _, row := range rows {
		order = append(order, row.ID)
		byID[row.ID] = row.CompletionTime
	}
	return order, byID
}

func randomProcesses(r *rand.Rand, n int) []core.Process {
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          i + 1,
			ArrivalTime: r.Intn(30),
			BurstTime:   r.Intn(12) + 1,
		}
	}
	return processes
}

func assertRowInvariants(t *testing.T, processes []core.Process, rows []core.ResultRow) {
	t.Helper()
	require.Len(t, rows, len(processes))

	input := make(map[int]core.Process, len(processes))
	for _, p := range processes {
		input[p.ID] = p
	}
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		p, ok := input[row.ID]
		require.True(t, ok, "unexpected id %d", row.ID)
		require.False(t, seen[row.ID], "duplicate id %d", row.ID)
		seen[row.ID] = true

		assert.Equal(t, p.ArrivalTime, row.ArrivalTime)
		assert.Equal(t, p.BurstTime, row.BurstTime)
		assert.Equal(t, row.CompletionTime-row.ArrivalTime, row.TurnaroundTime)
		assert.Equal(t, row.TurnaroundTime-row.BurstTime, row.WaitingTime)
		assert.GreaterOrEqual(t, row.CompletionTime, row.ArrivalTime+row.BurstTime)
		assert.GreaterOrEqual(t, row.WaitingTime, 0)
	}
}

func TestAllAlgorithms_RowInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		processes := randomProcesses(r, r.Intn(15)+1)
		quantum := r.Intn(6) + 1
		for _, alg := range Algorithms {
			result, err := Schedule(alg, processes, quantum)
			require.NoError(t, err)
			assertRowInvariants(t, processes, result.Rows)

			// the timeline accounts for every unit of burst
			busy := 0
			for _, slice := range result.Timeline {
				busy += slice.Stop - slice.Start
			}
			assert.Equal(t, result.Cpu.UtilizationTime, busy)
			assert.Equal(t, result.Cpu.TotalTime, result.Cpu.UtilizationTime+result.Cpu.IdleTime)
		}
	}
}

func TestAllAlgorithms_SingleProcess(t *testing.T) {
	processes := []core.Process{{ID: 1, ArrivalTime: 0, BurstTime: 6}}
	for _, alg := range Algorithms {
		result, err := Schedule(alg, processes, 4)
		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, 6, result.Rows[0].CompletionTime, alg)
		assert.Equal(t, 0, result.Rows[0].WaitingTime, alg)
	}
}

func TestAllAlgorithms_Empty(t *testing.T) {
	for _, alg := range Algorithms {
		result, err := Schedule(alg, nil, 2)
		require.NoError(t, err)
		assert.Empty(t, result.Rows)
		assert.Equal(t, 0, result.Cpu.TotalTime)
	}
}

func TestAllAlgorithms_InvalidProcess(t *testing.T) {
	inputs := [][]core.Process{
		{{ID: 1, ArrivalTime: 0, BurstTime: 3}, {ID: 2, ArrivalTime: 1, BurstTime: 0}},
		{{ID: 1, ArrivalTime: -1, BurstTime: 3}},
		{{ID: 1, BurstTime: 3}, {ID: 1, BurstTime: 2}},
	}
	for _, processes := range inputs {
		for _, alg := range Algorithms {
			result, err := Schedule(alg, processes, 2)
			assert.Nil(t, result)

			var invalid *core.InvalidProcessError
			assert.True(t, errors.As(err, &invalid), "%s: got %v", alg, err)
		}
	}
}

func TestAllAlgorithms_DoNotMutateInput(t *testing.T) {
	processes := []core.Process{
		{ID: 3, ArrivalTime: 4, BurstTime: 2},
		{ID: 1, ArrivalTime: 0, BurstTime: 5},
		{ID: 2, ArrivalTime: 1, BurstTime: 1},
	}
	original := append([]core.Process(nil), processes...)

	for _, alg := range Algorithms {
		_, err := Schedule(alg, processes, 2)
		require.NoError(t, err)
		assert.Equal(t, original, processes)
	}
}

func TestSchedule_UnknownAlgorithm(t *testing.T) {
	_, err := Schedule("lottery", nil, 1)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm(" RR ")
	require.NoError(t, err)
	assert.Equal(t, RoundRobin, alg)

	_, err = ParseAlgorithm("mlfq")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestCompareAll(t *testing.T) {
	processes := []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5},
		{ID: 2, ArrivalTime: 1, BurstTime: 3},
		{ID: 3, ArrivalTime: 2, BurstTime: 1},
	}

	results, err := CompareAll(processes, 4)
	require.NoError(t, err)
	require.Len(t, results, len(Algorithms))

	for i, alg := range Algorithms {
		want, err := Schedule(alg, processes, 4)
		require.NoError(t, err)
		assert.Equal(t, want, results[i])
	}
}

func TestCompareAll_InvalidQuantum(t *testing.T) {
	_, err := CompareAll([]core.Process{{ID: 1, BurstTime: 1}}, 0)

	var invalid *InvalidQuantumError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 0, invalid.Quantum)
}
