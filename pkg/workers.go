package mgenergy

import (
	"errors"
	"fmt"
	"sync"
)

type WorkerData struct {
	Start int
	End   int
}

const minChunkSize = 4096

func worker(id int, jobs <-chan WorkerData, results chan<- error, events *Events,
	table *DistanceTable, constants Constants, energies []float64) {
	for job := range jobs {
		results <- processChunk(id, job, events, table, constants, energies)
	}
}

func processChunk(id int, job WorkerData, events *Events, table *DistanceTable,
	constants Constants, energies []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d recovered from panic on events %d-%d: %v", id, job.Start, job.End, r)
		}
	}()
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Worker %d processing events %d-%d", id, job.Start, job.End)
		logger.Info(message, "workers")
	}
	computeRange(events, table, constants, job.Start, job.End, energies)
	return nil
}

func sendChunksToWorkers(nEvents int, chunkSize int, jobs chan<- WorkerData) {
	for start := 0; start < nEvents; start += chunkSize {
		end := min(start+chunkSize, nEvents)
		jobs <- WorkerData{Start: start, End: end}
	}
	close(jobs)
}

// ComputeEnergiesParallel splits the events in chunks handled by numWorkers
// goroutines. Each worker writes a disjoint range of the output, so the
// result is identical to ComputeEnergies.
func (c *Calculator) ComputeEnergiesParallel(events *Events, distanceOffset float64, numWorkers int) ([]float64, error) {
	if numWorkers <= 1 {
		return c.ComputeEnergies(events, distanceOffset)
	}
	if err := events.Validate(); err != nil {
		return nil, err
	}
	table, err := c.Table(distanceOffset)
	if err != nil {
		return nil, err
	}

	nEvents := events.Len()
	energies := make([]float64, nEvents)
	chunkSize := max(minChunkSize, (nEvents+numWorkers-1)/numWorkers)
	nChunks := (nEvents + chunkSize - 1) / chunkSize

	jobs := make(chan WorkerData, nChunks)
	results := make(chan error, nChunks)

	var wg sync.WaitGroup
	for id := 0; id < numWorkers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker(id, jobs, results, events, table, c.Constants, energies)
		}(id)
	}
	sendChunksToWorkers(nEvents, chunkSize, jobs)
	wg.Wait()
	close(results)

	var errs []error
	for err := range results {
		if err != nil {
			logger.Error(err.Error())
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Computed energies for %d events with %d workers", nEvents, numWorkers)
		logger.Info(message, "workers")
	}
	return energies, nil
}
