package domain

import "time"

type Category string

const (
	CategoryOffice      Category = "office"
	CategoryImage       Category = "image"
	CategoryPdf         Category = "pdf-passthrough"
	CategoryUnsupported Category = "unsupported"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Job is one file's conversion task. DestPath is fixed by the output
// resolver before dispatch and immutable afterwards; Status reaches
// exactly one terminal value (succeeded or failed).
type Job struct {
	SourcePath  string
	RelPath     string
	Category    Category
	DestPath    string
	Status      JobStatus
	Err         *ConvError
	StartedAt   time.Time
	CompletedAt time.Time
}

// Terminal reports whether the job has reached a final status.
func (j *Job) Terminal() bool {
	return j.Status == JobStatusSucceeded || j.Status == JobStatusFailed
}

// MarkRunning transitions a pending job to running.
func (j *Job) MarkRunning() {
	j.Status = JobStatusRunning
	j.StartedAt = time.Now()
}

// MarkSucceeded records the successful terminal state.
func (j *Job) MarkSucceeded() {
	j.Status = JobStatusSucceeded
	j.CompletedAt = time.Now()
}

// MarkFailed records the failed terminal state with a typed error.
func (j *Job) MarkFailed(err *ConvError) {
	j.Status = JobStatusFailed
	j.Err = err
	j.CompletedAt = time.Now()
}

// Batch is the complete set of jobs for one run. Jobs are ordered by
// discovery (lexicographic relative path) and owned exclusively by the
// orchestrator for the run's duration.
type Batch struct {
	Jobs       []*Job
	InputRoot  string
	OutputRoot string
	Flatten    bool
	ImageDPI   int
}
