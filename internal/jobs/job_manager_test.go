package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(context.Context) error {
	j.runs.Add(1)
	return nil
}

func TestJobManager_RunsScheduledJobs(t *testing.T) {
	job := &countingJob{}
	manager := NewJobManager(discardLogger(), Schedule{Spec: "* * * * * *", Job: job})

	require.NoError(t, manager.StartAll())
	assert.Eventually(t, func() bool { return job.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	manager.StopAll()
}

func TestJobManager_RejectsInvalidSpec(t *testing.T) {
	manager := NewJobManager(discardLogger(), Schedule{Spec: "every minute", Job: &countingJob{}})

	assert.Error(t, manager.StartAll())
}
