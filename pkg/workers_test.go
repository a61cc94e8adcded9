package mgenergy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEnergiesParallel(t *testing.T) {
	t.Parallel()
	calculator := NewCalculator(DefaultLayout())
	events := randomEvents(3*minChunkSize+17, 11)

	sequential, err := calculator.ComputeEnergies(events, 0.75)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 2, 4, 7} {
		parallel, err := calculator.ComputeEnergiesParallel(events, 0.75, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestComputeEnergiesParallelInvalidEvents(t *testing.T) {
	t.Parallel()
	calculator := NewCalculator(DefaultLayout())
	events := randomEvents(100, 2)
	events.WireCh[50] = NWireChs

	_, err := calculator.ComputeEnergiesParallel(events, 0, 4)
	var invalid *ErrInvalidVoxel
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 50, invalid.Index)
}

func TestSendChunksToWorkers(t *testing.T) {
	jobs := make(chan WorkerData, 10)
	sendChunksToWorkers(10, 4, jobs)

	var got []WorkerData
	for job := range jobs {
		got = append(got, job)
	}
	assert.Equal(t, []WorkerData{{0, 4}, {4, 8}, {8, 10}}, got)
}

func TestProcessChunkRecoversPanic(t *testing.T) {
	events := randomEvents(10, 4)
	energies := make([]float64, 5)

	err := processChunk(3, WorkerData{Start: 0, End: 10}, events, &DistanceTable{}, DefaultConstants(), energies)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker 3 recovered from panic")
}
