package jobs

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/cardpricer/internal/modules/history"
)

// PurgeJob removes resolution rows past the retention window
type PurgeJob struct {
	repo      *history.Repository
	retention time.Duration
	log       zerolog.Logger
}

// NewPurgeJob creates a new purge job
func NewPurgeJob(repo *history.Repository, retention time.Duration, log zerolog.Logger) *PurgeJob {
	return &PurgeJob{
		repo:      repo,
		retention: retention,
		log:       log.With().Str("job", "history_purge").Logger(),
	}
}

// Name returns the job name
func (j *PurgeJob) Name() string {
	return "history_purge"
}

// Run deletes resolutions older than the retention window
func (j *PurgeJob) Run() error {
	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.repo.PurgeOlderThan(cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		j.log.Info().
			Int64("deleted", deleted).
			Time("cutoff", cutoff).
			Msg("Purged old resolutions")
	}

	return nil
}
