package usecase

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Cron schedules for the retention jobs.
const (
	dailyCleanupSpec = "0 2 * * *" // every day at 02:00
	weeklyReportSpec = "0 1 * * 0" // every Sunday at 01:00
)

// CleanupScheduler drives the retention service on a fixed schedule. A failed
// run is logged and left for the next occurrence; it never crashes the
// process or surfaces to user-facing requests.
type CleanupScheduler struct {
	Retention *RetentionService
	cron      *cron.Cron
}

func NewCleanupScheduler(retention *RetentionService) *CleanupScheduler {
	return &CleanupScheduler{
		Retention: retention,
		cron:      cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

// Start registers the daily purge and weekly report jobs and starts the
// scheduler in its own goroutine.
func (s *CleanupScheduler) Start() error {
	if _, err := s.cron.AddFunc(dailyCleanupSpec, s.runDailyCleanup); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(weeklyReportSpec, s.runWeeklyReport); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Trash cleanup scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *CleanupScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CleanupScheduler) runDailyCleanup() {
	log.Println("Starting daily trash cleanup job")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.Retention.RunCleanup(ctx); err != nil {
		// Retried at the next scheduled occurrence
		log.Printf("Failed to run trash cleanup job: %v", err)
	}
}

func (s *CleanupScheduler) runWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stats, err := s.Retention.Stats(ctx)
	if err != nil {
		log.Printf("Failed to generate weekly trash report: %v", err)
		return
	}

	log.Printf("Weekly trash report: total=%d current=%d expired=%d",
		stats.Total, stats.Current, stats.Expired)
	if stats.Expired > 0 {
		log.Printf("Warning: found %d expired notes that should have been cleaned up", stats.Expired)
	}
}
