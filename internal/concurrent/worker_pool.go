// SPDX-License-Identifier: MIT

package concurrent

import (
	"sync"
)

// JobFunc processes one job and produces one result.
type JobFunc[T any, G any] func(job T) G

// WorkerPool runs JobFunc over queued jobs on numWorkers goroutines.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

// NewWorkerPool allocates a pool with numWorkers goroutines (at least one) and
// job/result buffers of jobQueueSize. The results buffer must hold every
// result when jobs are enqueued before anyone drains CollectResults.
func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if jobQueueSize < 0 {
		jobQueueSize = 0
	}

	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

// Start spawns the workers.
func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// AddJob enqueues a job; it blocks while the queue is full.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait blocks until every worker has exited, then closes the results channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// CollectResults exposes the results channel.
func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}

// Run processes jobs on numWorkers goroutines and returns every result in
// completion order.
func Run[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(jobFunc)
	for _, job := range jobs {
		wp.AddJob(job)
	}
	wp.Close()
	wp.Wait()

	out := make([]G, 0, len(jobs))
	for r := range wp.CollectResults() {
		out = append(out, r)
	}

	return out
}
