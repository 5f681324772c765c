package repository

import (
	"context"
	"os"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/utils"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// CreateNote inserts a new note document.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
	}
	return err
}

// GetNote retrieves a single note owned by userID.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNoteNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies the given field set to a note owned by userID.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, set bson.M) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": noteID, "user_id": userID}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

// UnsetNoteFields removes fields from a note document (used to clear
// trashed_at and due_date).
func (r *NotesRepo) UnsetNoteFields(ctx context.Context, noteID, userID string, set, unset bson.M) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": noteID, "user_id": userID}
	update := bson.M{"$set": set, "$unset": unset}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

// DeleteNote permanently removes a note owned by userID.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

func (r *NotesRepo) findNotes(ctx context.Context, filter bson.M, sort bson.D) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(sort)
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_query_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetActiveNotes retrieves all non-trashed notes for a user, most recently
// updated first.
func (r *NotesRepo) GetActiveNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return r.findNotes(ctx,
		bson.M{"user_id": userID, "is_trashed": false},
		bson.D{{Key: "updated_at", Value: -1}})
}

// GetArchivedNotes retrieves archived, non-trashed notes for a user.
func (r *NotesRepo) GetArchivedNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return r.findNotes(ctx,
		bson.M{"user_id": userID, "is_archived": true, "is_trashed": false},
		bson.D{{Key: "updated_at", Value: -1}})
}

// GetTrashedNotes retrieves trashed notes whose trashed_at is at or after
// since, most recently trashed first.
func (r *NotesRepo) GetTrashedNotes(ctx context.Context, userID string, since time.Time) ([]*model.Note, error) {
	return r.findNotes(ctx,
		bson.M{
			"user_id":    userID,
			"is_trashed": true,
			"trashed_at": bson.M{"$gte": since},
		},
		bson.D{{Key: "trashed_at", Value: -1}})
}

// SearchNotes matches query as a case-insensitive substring of the title,
// any checklist item, or any tag. Trashed notes are excluded.
func (r *NotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"user_id":    userID,
		"is_trashed": false,
		"$or": []bson.M{
			{"title": bson.M{"$regex": pattern}},
			{"items": bson.M{"$regex": pattern}},
			{"tags": bson.M{"$regex": pattern}},
		},
	}
	return r.findNotes(ctx, filter, bson.D{{Key: "updated_at", Value: -1}})
}

// GetNotesByTag retrieves active notes carrying the exact tag.
func (r *NotesRepo) GetNotesByTag(ctx context.Context, userID, tag string) ([]*model.Note, error) {
	return r.findNotes(ctx,
		bson.M{
			"user_id":    userID,
			"is_trashed": false,
			"tags":       bson.M{"$in": []string{tag}},
		},
		bson.D{{Key: "updated_at", Value: -1}})
}

// GetAllTags returns the distinct tags across a user's active notes.
func (r *NotesRepo) GetAllTags(ctx context.Context, userID string) ([]string, error) {
	timer := utils.TrackDBOperation("distinct", "notes")
	defer timer.ObserveDuration()

	values, err := r.MongoCollection.Distinct(ctx, "tags",
		bson.M{"user_id": userID, "is_trashed": false})
	if err != nil {
		utils.TrackError("database", "tag_query_error")
		return nil, err
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if tag, ok := v.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// GetNotesWithDueDates retrieves active notes that carry a due date,
// ascending by due date.
func (r *NotesRepo) GetNotesWithDueDates(ctx context.Context, userID string) ([]*model.Note, error) {
	return r.findNotes(ctx,
		bson.M{
			"user_id":    userID,
			"is_trashed": false,
			"due_date":   bson.M{"$exists": true, "$ne": nil},
		},
		bson.D{{Key: "due_date", Value: 1}})
}

// DeleteTrashedBefore permanently removes all trashed notes, across users,
// whose trashed_at is strictly before cutoff. Returns the number removed.
func (r *NotesRepo) DeleteTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	timer := utils.TrackDBOperation("delete_many", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"is_trashed": true,
		"trashed_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		utils.TrackError("database", "trash_purge_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountTrashed counts trashed notes across users; a zero cutoff counts all,
// otherwise only those trashed strictly before cutoff.
func (r *NotesRepo) CountTrashed(ctx context.Context, before time.Time) (int64, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"is_trashed": true}
	if !before.IsZero() {
		filter["trashed_at"] = bson.M{"$lt": before}
	}

	count, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.TrackError("database", "trash_count_failed")
		return 0, err
	}
	return count, nil
}
