package jobs

import (
	"database/sql"

	"homelet-backend/internal/config"
	"homelet-backend/internal/logger"
	"homelet-backend/internal/repository/postgres"
	"homelet-backend/internal/service"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	email  service.EmailService
	config *config.Config
}

func NewJobRunner(db *sql.DB, store *postgres.Store, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		email:  email,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery so one bad run
// cannot take the scheduler down.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once, for manual execution from the cronjob
// binary.
func (jr *JobRunner) RunAll() {
	jr.PurgeExpiredTokens()
	jr.ExpireAnnouncements()
	jr.SendLeaseEndReminders()
}
