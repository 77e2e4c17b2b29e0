package linter

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a lint job submitted to River. The
// checksum is the unique key: identical content yields identical findings, so
// one job per revision is enough no matter how many documents share it.
type JobArgs struct {
	// Checksum identifies the content revision to lint. It is marked as unique
	// so River enforces one live job per revision.
	Checksum string `json:"checksum" river:"unique"`
	// Path is the corpus-relative file to read when processing the job.
	Path string `json:"path"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same checksum is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the lint worker.
func (args JobArgs) Kind() string { return "LintDocumentJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate jobs for the same checksum across multiple job states.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per content revision in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
