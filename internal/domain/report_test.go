package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terminalJob(rel string, status JobStatus, err *ConvError) *Job {
	j := &Job{RelPath: rel, Status: status}
	j.Err = err
	return j
}

func TestBuildReport_Counts(t *testing.T) {
	batch := &Batch{Jobs: []*Job{
		terminalJob("a.docx", JobStatusSucceeded, nil),
		terminalJob("b.txt", JobStatusFailed, NewConvError(KindUnsupportedFormat, "unsupported file type: .txt", nil)),
		terminalJob("c.png", JobStatusSucceeded, nil),
		terminalJob("d.xlsx", JobStatusFailed, NewConvError(KindTimeout, "conversion exceeded job timeout", nil)),
	}}

	r := BuildReport(batch)

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Succeeded)
	assert.Equal(t, 2, r.Failed)
	require.Len(t, r.Failures, 2)

	// Failures keep discovery order, not completion order.
	assert.Equal(t, "b.txt", r.Failures[0].RelPath)
	assert.Equal(t, KindUnsupportedFormat, r.Failures[0].Kind)
	assert.Equal(t, "d.xlsx", r.Failures[1].RelPath)
	assert.Equal(t, KindTimeout, r.Failures[1].Kind)
}

func TestBuildReport_EmptyBatch(t *testing.T) {
	r := BuildReport(&Batch{})

	assert.Equal(t, 0, r.Total)
	assert.Equal(t, 0, r.Succeeded)
	assert.Equal(t, 0, r.Failed)
	assert.Empty(t, r.Failures)
	assert.Equal(t, 0, r.ExitCode(), "an empty run is a successful run")
}

func TestReport_ExitCode(t *testing.T) {
	assert.Equal(t, 0, (&Report{Total: 3, Succeeded: 3}).ExitCode())
	assert.Equal(t, 1, (&Report{Total: 3, Succeeded: 2, Failed: 1}).ExitCode())
	assert.Equal(t, 1, (&Report{Total: 3, Failed: 3}).ExitCode())
}

func TestJob_StatusTransitions(t *testing.T) {
	j := &Job{Status: JobStatusPending}
	assert.False(t, j.Terminal())

	j.MarkRunning()
	assert.Equal(t, JobStatusRunning, j.Status)
	assert.False(t, j.Terminal())

	j.MarkFailed(NewConvError(KindEngineFailure, "boom", nil))
	assert.True(t, j.Terminal())
	assert.Equal(t, JobStatusFailed, j.Status)
	require.NotNil(t, j.Err)
	assert.Equal(t, KindEngineFailure, j.Err.Kind)
	assert.False(t, j.CompletedAt.IsZero())
}
