// SPDX-License-Identifier: MIT

// Package concurrent provides a small generic worker pool used to fan
// independent CPU-bound jobs (contraction trial batches) out over a fixed
// number of goroutines and collect their results.
//
// Lifecycle:
//
//	wp := NewWorkerPool[Job, Result](workers, queue)
//	wp.Start(fn)          // spawn workers
//	wp.AddJob(j) ...      // enqueue
//	wp.Close()            // no more jobs
//	wp.Wait()             // workers done, results channel closed
//	for r := range wp.CollectResults() { ... }
//
// Results arrive in completion order, not submission order; callers that need
// determinism carry an index inside the result. Run wraps the whole lifecycle
// for a known slice of jobs.
package concurrent
