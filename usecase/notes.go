package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"
)

// UpcomingWindow is how far ahead the due-date classification looks.
const UpcomingWindow = 7 * 24 * time.Hour

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

// normalizeTags trims tags and drops empties, then checks the count limit.
func normalizeTags(tags []string) ([]string, error) {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	if len(normalized) > model.MaxTags {
		return nil, model.NewValidationError("maximum 9 tags allowed")
	}
	return normalized, nil
}

// validCompletedItems keeps only indices that reference existing items.
func validCompletedItems(completed []int, itemCount int) []int {
	kept := make([]int, 0, len(completed))
	for _, i := range completed {
		if i >= 0 && i < itemCount {
			kept = append(kept, i)
		}
	}
	return kept
}

// RenumberCompleted rewrites a completed-index set after the item at position
// removed was spliced out: indices below it keep their value, indices above
// shift down by one, the removed index itself is dropped.
func RenumberCompleted(completed []int, removed int) []int {
	renumbered := make([]int, 0, len(completed))
	for _, i := range completed {
		switch {
		case i < removed:
			renumbered = append(renumbered, i)
		case i > removed:
			renumbered = append(renumbered, i-1)
		}
	}
	return renumbered
}

// CreateNote validates the request and inserts a new active note.
func (svc *NotesService) CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*model.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, model.NewValidationError("note title is required")
	}

	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	color := req.BackgroundColor
	if color == "" {
		color = model.DefaultBackgroundColor
	} else if !model.ValidBackgroundColor(color) {
		return nil, model.NewValidationError("background color is not part of the palette")
	}

	items := req.Items
	if items == nil {
		items = []string{}
	}

	now := time.Now()
	note := &model.Note{
		ID:              uuid.New().String(),
		UserID:          userID,
		Title:           title,
		Items:           items,
		CompletedItems:  validCompletedItems(req.CompletedItems, len(items)),
		Tags:            tags,
		BackgroundColor: color,
		DueDate:         req.DueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies a partial update to a note owned by userID. Trash state
// is never touched here; archiving goes through the IsArchived field.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, patch *dto.NotePatch) (*model.Note, error) {
	existing, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	unset := bson.M{}

	items := existing.Items
	completed := existing.CompletedItems
	itemsChanged := false

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, model.NewValidationError("note title is required")
		}
		set["title"] = title
	}

	if patch.Items != nil {
		items = *patch.Items
		if items == nil {
			items = []string{}
		}
		set["items"] = items
		itemsChanged = true
	}

	if patch.CompletedItems != nil {
		completed = *patch.CompletedItems
		itemsChanged = true
	}

	if itemsChanged {
		// Keep the completed set consistent with the (possibly shorter) list.
		set["completed_items"] = validCompletedItems(completed, len(items))
	}

	if patch.Tags != nil {
		tags, err := normalizeTags(*patch.Tags)
		if err != nil {
			return nil, err
		}
		set["tags"] = tags
	}

	if patch.BackgroundColor != nil {
		if !model.ValidBackgroundColor(*patch.BackgroundColor) {
			return nil, model.NewValidationError("background color is not part of the palette")
		}
		set["background_color"] = *patch.BackgroundColor
	}

	if patch.ClearDueDate {
		unset["due_date"] = ""
	} else if patch.DueDate != nil {
		set["due_date"] = *patch.DueDate
	}

	if patch.IsArchived != nil {
		set["is_archived"] = *patch.IsArchived
	}

	if len(unset) > 0 {
		err = svc.NotesRepo.UnsetNoteFields(ctx, noteID, userID, set, unset)
	} else {
		err = svc.NotesRepo.UpdateNote(ctx, noteID, userID, set)
	}
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("update")
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// SoftDeleteNote moves a note to the trash, stamping trashed_at. Re-trashing
// an already-trashed note just refreshes the timestamp.
func (svc *NotesService) SoftDeleteNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	now := time.Now()
	err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, bson.M{
		"is_trashed": true,
		"trashed_at": now,
		"updated_at": now,
	})
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("trash")
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// RestoreNote brings a note back from the trash, clearing trashed_at.
func (svc *NotesService) RestoreNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	err := svc.NotesRepo.UnsetNoteFields(ctx, noteID, userID,
		bson.M{"is_trashed": false, "updated_at": time.Now()},
		bson.M{"trashed_at": ""})
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("restore")
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// PermanentlyDeleteNote removes a note irrecoverably.
func (svc *NotesService) PermanentlyDeleteNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}
	utils.TrackNoteOperation("permanent_delete")
	return nil
}

// RemoveChecklistItem splices out the item at index and renumbers the
// completed set in the same write, so the two never desynchronize.
func (svc *NotesService) RemoveChecklistItem(ctx context.Context, noteID, userID string, index int) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(note.Items) {
		return nil, model.NewValidationError("checklist item index out of range")
	}

	items := make([]string, 0, len(note.Items)-1)
	items = append(items, note.Items[:index]...)
	items = append(items, note.Items[index+1:]...)

	err = svc.NotesRepo.UpdateNote(ctx, noteID, userID, bson.M{
		"items":           items,
		"completed_items": RenumberCompleted(note.CompletedItems, index),
		"updated_at":      time.Now(),
	})
	if err != nil {
		return nil, err
	}

	utils.TrackNoteOperation("remove_item")
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// GetNote retrieves a single note owned by userID.
func (svc *NotesService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// ListActiveNotes lists all non-trashed notes, most recently updated first.
func (svc *NotesService) ListActiveNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetActiveNotes(ctx, userID)
}

// ListArchivedNotes lists archived, non-trashed notes.
func (svc *NotesService) ListArchivedNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetArchivedNotes(ctx, userID)
}

// ListTrashedNotes lists trashed notes still inside the retention window.
func (svc *NotesService) ListTrashedNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	since := time.Now().Add(-RetentionWindow)
	return svc.NotesRepo.GetTrashedNotes(ctx, userID, since)
}

// SearchNotes matches text case-insensitively against titles, checklist
// items, and tags of active notes.
func (svc *NotesService) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, model.NewValidationError("search query is required")
	}
	return svc.NotesRepo.SearchNotes(ctx, userID, query)
}

// ListNotesByTag lists active notes carrying the exact (case-sensitive) tag.
func (svc *NotesService) ListNotesByTag(ctx context.Context, userID, tag string) ([]*model.Note, error) {
	if tag == "" {
		return nil, model.NewValidationError("tag is required")
	}
	return svc.NotesRepo.GetNotesByTag(ctx, userID, tag)
}

// ListAllTags returns the distinct tags across the user's active notes.
func (svc *NotesService) ListAllTags(ctx context.Context, userID string) ([]string, error) {
	return svc.NotesRepo.GetAllTags(ctx, userID)
}

// ClassifyByDueDate partitions active notes with a due date into overdue
// (strictly past) and upcoming (within the next 7 days inclusive). Notes due
// further out fall into neither bucket.
func (svc *NotesService) ClassifyByDueDate(ctx context.Context, userID string) (*model.DueDateBuckets, error) {
	notes, err := svc.NotesRepo.GetNotesWithDueDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return ClassifyDueDates(notes, now), nil
}

// ClassifyDueDates buckets notes by due date relative to now. Input order is
// preserved, so pre-sorted input yields ascending buckets.
func ClassifyDueDates(notes []*model.Note, now time.Time) *model.DueDateBuckets {
	horizon := now.Add(UpcomingWindow)
	buckets := &model.DueDateBuckets{
		Overdue:  []*model.Note{},
		Upcoming: []*model.Note{},
	}

	for _, note := range notes {
		if note.DueDate == nil {
			continue
		}
		due := *note.DueDate
		switch {
		case due.Before(now):
			buckets.Overdue = append(buckets.Overdue, note)
		case !due.After(horizon):
			buckets.Upcoming = append(buckets.Upcoming, note)
		}
	}
	return buckets
}
