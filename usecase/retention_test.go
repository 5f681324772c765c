package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/repository"
)

func setupRetentionTest(t *testing.T) (*RetentionService, *repository.NotesRepo, func()) {
	t.Helper()

	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	notesRepo := repository.GetNotesRepo(client)
	retention := &RetentionService{NotesRepo: notesRepo}

	cleanup := func() {
		if err := client.Database("notekeep_test").Collection("notes").Drop(context.Background()); err != nil {
			t.Errorf("Failed to clean up test collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	return retention, notesRepo, cleanup
}

func insertTrashedNote(t *testing.T, repo *repository.NotesRepo, trashedAt time.Time) {
	t.Helper()
	note := &model.Note{
		ID:              uuid.New().String(),
		UserID:          uuid.New().String(),
		Title:           "Trashed",
		Items:           []string{},
		CompletedItems:  []int{},
		BackgroundColor: model.DefaultBackgroundColor,
		IsTrashed:       true,
		TrashedAt:       &trashedAt,
		CreatedAt:       trashedAt,
		UpdatedAt:       trashedAt,
	}
	if err := repo.CreateNote(context.Background(), note); err != nil {
		t.Fatal(err)
	}
}

func TestPurgeExpired(t *testing.T) {
	retention, repo, cleanup := setupRetentionTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()

	insertTrashedNote(t, repo, now.Add(-31*24*time.Hour)) // expired
	insertTrashedNote(t, repo, now.Add(-40*24*time.Hour)) // expired
	insertTrashedNote(t, repo, now.Add(-time.Hour))       // current

	stats, err := retention.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 3 || stats.Expired != 2 || stats.Current != 1 {
		t.Fatalf("stats before purge = %+v", stats)
	}

	t.Run("first purge deletes expired", func(t *testing.T) {
		deleted, err := retention.PurgeExpired(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if deleted != 2 {
			t.Fatalf("deleted = %d, want 2", deleted)
		}
	})

	t.Run("second purge is a no-op", func(t *testing.T) {
		deleted, err := retention.PurgeExpired(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if deleted != 0 {
			t.Fatalf("deleted = %d, want 0", deleted)
		}

		stats, err := retention.Stats(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if stats.Expired != 0 {
			t.Fatalf("expired = %d after purge, want 0", stats.Expired)
		}
		if stats.Total != 1 || stats.Current != 1 {
			t.Fatalf("stats after purge = %+v", stats)
		}
	})
}

func TestRunCleanup(t *testing.T) {
	retention, repo, cleanup := setupRetentionTest(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now()

	insertTrashedNote(t, repo, now.Add(-35*24*time.Hour))
	insertTrashedNote(t, repo, now.Add(-time.Minute))

	result, err := retention.RunCleanup(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if result.DeletedCount != 1 {
		t.Fatalf("deleted = %d, want 1", result.DeletedCount)
	}
	if result.StatsBefore.Expired != 1 {
		t.Fatalf("stats before = %+v", result.StatsBefore)
	}
	if result.StatsAfter.Expired != 0 || result.StatsAfter.Total != 1 {
		t.Fatalf("stats after = %+v", result.StatsAfter)
	}
}

func TestCleanupSchedulerStartStop(t *testing.T) {
	retention, _, cleanup := setupRetentionTest(t)
	defer cleanup()

	scheduler := NewCleanupScheduler(retention)
	if err := scheduler.Start(); err != nil {
		t.Fatalf("scheduler failed to start: %v", err)
	}
	scheduler.Stop()
}
