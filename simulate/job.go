// Package simulate - job-shaped submission façade.
//
// Remote quantum services hand back job records, not raw results; Runner
// mirrors that surface over the local backend so calling code written
// against a submission API ports across unchanged. Execution stays
// synchronous and single-threaded: Run* returns only after the job has
// reached a terminal state.
package simulate

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/qvar/circuit"
	"github.com/katalvlaran/qvar/pauli"
)

// JobStatus is the lifecycle state of a submitted job.
type JobStatus string

const (
	// JobCompleted marks a job whose result is available.
	JobCompleted JobStatus = "completed"
	// JobFailed marks a job that terminated with an error.
	JobFailed JobStatus = "failed"
)

// Job is the immutable record of one executed submission.
type Job struct {
	id     string
	status JobStatus
	counts Counts
	value  float64
	err    error
}

// ID returns the job's unique identifier.
func (j *Job) ID() string { return j.id }

// Status returns the terminal lifecycle state.
func (j *Job) Status() JobStatus { return j.status }

// Err returns the failure cause for JobFailed jobs (nil otherwise).
func (j *Job) Err() error { return j.err }

// Counts returns the sampling result of a completed sampling job.
func (j *Job) Counts() Counts { return j.counts }

// Value returns the scalar result of a completed estimation job.
func (j *Job) Value() float64 { return j.value }

// Runner executes submissions against a local backend, wrapping each in a
// uuid-identified job record.
type Runner struct {
	backend *Exact
}

// NewRunner wraps backend (nil means a default Exact).
//
// Complexity: O(1).
func NewRunner(backend *Exact) *Runner {
	if backend == nil {
		backend = NewExact()
	}
	return &Runner{backend: backend}
}

// RunEstimate submits an estimation job and blocks until it terminates.
// The returned job is JobCompleted or JobFailed; the error mirrors
// job.Err for callers that prefer the plain form.
func (r *Runner) RunEstimate(ctx context.Context, b circuit.Bound, obs *pauli.Observable) (*Job, error) {
	job := &Job{id: uuid.NewString()}

	val, err := r.backend.Estimate(ctx, b, obs)
	if err != nil {
		job.status = JobFailed
		job.err = err
		return job, err
	}

	job.status = JobCompleted
	job.value = val
	return job, nil
}

// RunSample submits a sampling job and blocks until it terminates.
func (r *Runner) RunSample(ctx context.Context, b circuit.Bound, shots int) (*Job, error) {
	job := &Job{id: uuid.NewString()}

	counts, err := r.backend.Sample(ctx, b, shots)
	if err != nil {
		job.status = JobFailed
		job.err = err
		return job, err
	}

	job.status = JobCompleted
	job.counts = counts
	return job, nil
}
