package repository

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"main/model"
	"main/utils"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnv("USERS_COLLECTION", "users")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// AddUser inserts an account record. The unique email index backs the
// duplicate check; a racing insert surfaces as a duplicate key error.
func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrEmailExists
		}
		utils.TrackError("database", "user_creation_failed")
		return err
	}

	utils.TrackRegistration()
	return nil
}

// FindUserByEmail looks an account up by email; (nil, nil) when absent.
func (r *UsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx,
		bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}
	return &user, nil
}

// FindUser looks an account up by its user_id; (nil, nil) when absent.
func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx,
		bson.D{{Key: "user_id", Value: userID}}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}
	return &user, nil
}

// SetTwoFactor stores 2FA state for an account.
func (r *UsersRepo) SetTwoFactor(ctx context.Context, userID, secret string, enabled bool, recoveryCodes []string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	set := bson.M{
		"two_factor_secret":  secret,
		"two_factor_enabled": enabled,
	}
	if recoveryCodes != nil {
		set["recovery_codes"] = recoveryCodes
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "two_factor_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// UpdateRecoveryCodes replaces the stored recovery code hashes.
func (r *UsersRepo) UpdateRecoveryCodes(ctx context.Context, userID string, codes []string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"recovery_codes": codes}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
