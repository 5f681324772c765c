package usecase

import (
	"testing"
	"time"

	"main/model"
)

func TestRenumberCompleted(t *testing.T) {
	tests := []struct {
		name      string
		completed []int
		removed   int
		want      []int
	}{
		{"removed between completed", []int{0, 2}, 1, []int{0, 1}},
		{"removed is completed", []int{0, 1, 2}, 1, []int{0, 1}},
		{"removed before all", []int{1, 2}, 0, []int{0, 1}},
		{"removed after all", []int{0, 1}, 2, []int{0, 1}},
		{"empty set", []int{}, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenumberCompleted(tt.completed, tt.removed)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func dueNote(due time.Time) *model.Note {
	return &model.Note{DueDate: &due}
}

func TestClassifyDueDates(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	overdue := dueNote(now.Add(-time.Hour))
	dueExactlyNow := dueNote(now)
	inThreeDays := dueNote(now.Add(3 * 24 * time.Hour))
	inSevenDays := dueNote(now.Add(7 * 24 * time.Hour))
	inEightDays := dueNote(now.Add(8 * 24 * time.Hour))
	noDueDate := &model.Note{}

	buckets := ClassifyDueDates([]*model.Note{
		overdue, dueExactlyNow, inThreeDays, inSevenDays, inEightDays, noDueDate,
	}, now)

	if len(buckets.Overdue) != 1 || buckets.Overdue[0] != overdue {
		t.Errorf("expected exactly the past-due note in overdue, got %d notes", len(buckets.Overdue))
	}

	// Due exactly now is not yet overdue, but is upcoming
	if len(buckets.Upcoming) != 3 {
		t.Fatalf("expected 3 upcoming notes, got %d", len(buckets.Upcoming))
	}
	if buckets.Upcoming[0] != dueExactlyNow {
		t.Error("note due exactly now should be upcoming, not overdue")
	}
	if buckets.Upcoming[2] != inSevenDays {
		t.Error("note due in exactly 7 days should be upcoming")
	}

	// Eight days out lands in neither bucket
	for _, n := range buckets.Overdue {
		if n == inEightDays {
			t.Error("note due in 8 days must not be overdue")
		}
	}
	for _, n := range buckets.Upcoming {
		if n == inEightDays {
			t.Error("note due in 8 days must not be upcoming")
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Run("trims and drops empties", func(t *testing.T) {
		tags, err := normalizeTags([]string{" work ", "", "  ", "home"})
		if err != nil {
			t.Fatal(err)
		}
		if len(tags) != 2 || tags[0] != "work" || tags[1] != "home" {
			t.Fatalf("got %v", tags)
		}
	})

	t.Run("nine tags allowed", func(t *testing.T) {
		tags := make([]string, 9)
		for i := range tags {
			tags[i] = string(rune('a' + i))
		}
		if _, err := normalizeTags(tags); err != nil {
			t.Fatalf("9 tags should be allowed: %v", err)
		}
	})

	t.Run("ten tags rejected", func(t *testing.T) {
		tags := make([]string, 10)
		for i := range tags {
			tags[i] = string(rune('a' + i))
		}
		_, err := normalizeTags(tags)
		if err == nil {
			t.Fatal("10 tags should be rejected")
		}
		if !model.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestValidCompletedItems(t *testing.T) {
	got := validCompletedItems([]int{-1, 0, 2, 5}, 3)
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("got %v, want [0 2]", got)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	fresh := now.Add(-time.Hour)
	old := now.Add(-31 * 24 * time.Hour)

	if IsExpired(&model.Note{IsTrashed: true, TrashedAt: &fresh}, now) {
		t.Error("recently trashed note must not be expired")
	}
	if !IsExpired(&model.Note{IsTrashed: true, TrashedAt: &old}, now) {
		t.Error("note trashed 31 days ago must be expired")
	}
	if IsExpired(&model.Note{IsTrashed: false}, now) {
		t.Error("untrashed note can never be expired")
	}
}
