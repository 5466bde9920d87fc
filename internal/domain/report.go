package domain

// Failure is one failed conversion as it appears in the report.
type Failure struct {
	RelPath string
	Kind    ErrorKind
	Message string
}

// Report is the read-only summary of a finished batch. It is built once
// after every job is terminal and never mutated.
type Report struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// BuildReport aggregates job outcomes in discovery order. Callers must
// only invoke it once all jobs are terminal.
func BuildReport(batch *Batch) *Report {
	r := &Report{Total: len(batch.Jobs)}
	for _, j := range batch.Jobs {
		switch j.Status {
		case JobStatusSucceeded:
			r.Succeeded++
		case JobStatusFailed:
			r.Failed++
			f := Failure{RelPath: j.RelPath, Kind: KindEngineFailure}
			if j.Err != nil {
				f.Kind = j.Err.Kind
				f.Message = j.Err.Message
			}
			r.Failures = append(r.Failures, f)
		}
	}
	return r
}

// ExitCode maps the report to the process exit status: 0 when nothing
// failed (an empty run counts as success), 1 otherwise.
func (r *Report) ExitCode() int {
	if r.Failed > 0 {
		return 1
	}
	return 0
}
