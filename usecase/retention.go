package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// RetentionWindow is how long a trashed note survives before it becomes
// eligible for permanent purge.
const RetentionWindow = 30 * 24 * time.Hour

// RetentionService enforces the trash retention window. Its purge predicate
// is a deterministic timestamp comparison, so concurrent invocations are
// idempotent and it never races with user-facing trash/restore operations.
type RetentionService struct {
	NotesRepo *repository.NotesRepo
}

// CleanupResult reports a purge run.
type CleanupResult struct {
	DeletedCount int64             `json:"deleted_count"`
	StatsBefore  *model.TrashStats `json:"stats_before"`
	StatsAfter   *model.TrashStats `json:"stats_after"`
}

// IsExpired classifies a trashed note: expired once trashed_at has fallen
// behind the retention cutoff, current otherwise.
func IsExpired(note *model.Note, now time.Time) bool {
	if !note.IsTrashed || note.TrashedAt == nil {
		return false
	}
	return note.TrashedAt.Before(now.Add(-RetentionWindow))
}

// PurgeExpired permanently deletes every trashed note past the retention
// window and returns how many were removed.
func (svc *RetentionService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-RetentionWindow)
	deleted, err := svc.NotesRepo.DeleteTrashedBefore(ctx, cutoff)
	utils.TrackTrashPurge(deleted, err)
	return deleted, err
}

// Stats summarizes the trash: total trashed, still inside the window, and
// expired (zero immediately after a purge).
func (svc *RetentionService) Stats(ctx context.Context) (*model.TrashStats, error) {
	total, err := svc.NotesRepo.CountTrashed(ctx, time.Time{})
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-RetentionWindow)
	expired, err := svc.NotesRepo.CountTrashed(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	return &model.TrashStats{
		Total:   total,
		Current: total - expired,
		Expired: expired,
	}, nil
}

// RunCleanup performs a full purge with before/after stats, logging progress.
// Used by both the scheduled job and the manual admin trigger.
func (svc *RetentionService) RunCleanup(ctx context.Context) (*CleanupResult, error) {
	start := time.Now()

	statsBefore, err := svc.Stats(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Trash stats before cleanup: total=%d current=%d expired=%d",
		statsBefore.Total, statsBefore.Current, statsBefore.Expired)

	deleted, err := svc.PurgeExpired(ctx)
	if err != nil {
		return nil, err
	}

	statsAfter, err := svc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("Trash cleanup completed in %s: deleted %d expired notes",
		time.Since(start).Round(time.Millisecond), deleted)
	if statsAfter.Expired > 0 {
		log.Printf("Warning: %d expired notes still remain after cleanup", statsAfter.Expired)
	}

	return &CleanupResult{
		DeletedCount: deleted,
		StatsBefore:  statsBefore,
		StatsAfter:   statsAfter,
	}, nil
}
