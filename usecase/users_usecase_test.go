package usecase

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/model"
	"main/repository"
	"main/utils"
)

func setupUsersTest(t *testing.T) (*UserService, func()) {
	t.Helper()

	utils.InitJWT()

	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	svc := &UserService{
		UsersRepo: repository.GetUsersRepo(client),
	}

	cleanup := func() {
		if err := client.Database("notekeep_test").Collection("users").Drop(context.Background()); err != nil {
			t.Errorf("Failed to clean up test collection: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	return svc, cleanup
}

func TestRegisterAndLogin(t *testing.T) {
	svc, cleanup := setupUsersTest(t)
	defer cleanup()

	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "s3cret!!")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.UserID == "" {
		t.Fatal("registered user must get an id")
	}
	if user.Password == "s3cret!!" {
		t.Fatal("password must be stored hashed")
	}

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice@example.com", "0ther!pw")
		if err != model.ErrEmailExists {
			t.Fatalf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob@example.com", "weak")
		if !model.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("login with correct credentials", func(t *testing.T) {
		got, err := svc.Login(ctx, "alice@example.com", "s3cret!!", "")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if got.UserID != user.UserID {
			t.Fatal("login returned a different account")
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "wr0ng!!!", "")
		if err != model.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email rejected identically", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "s3cret!!", "")
		if err != model.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("profile", func(t *testing.T) {
		got, err := svc.GetProfile(ctx, user.UserID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Email != "alice@example.com" {
			t.Fatalf("email = %q", got.Email)
		}
	})

	t.Run("profile of unknown user", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, "missing-id")
		if err != model.ErrUserNotFound {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
