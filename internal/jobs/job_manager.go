package jobs

import "fmt"

// Job is a background task with an explicit lifecycle.
type Job interface {
	Start() error
	Stop()
}

// JobManager starts and stops every background job as a unit.
type JobManager struct {
	jobs []Job
}

func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts jobs in order. If one fails, those already started are
// stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}
	return nil
}

// StopAll stops jobs in reverse start order.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
