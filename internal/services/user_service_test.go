package services

import (
	"context"
	"testing"

	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(store.NewGormStore(db))

		user, err := svc.CreateUser(ctx, "Alice@Example.com", "password123", "Alice")
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("expected password to be hashed")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(store.NewGormStore(db))

		_, err := svc.CreateUser(ctx, "bob@example.com", "password123", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser(ctx, "bob@example.com", "different456", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(store.NewGormStore(db))

		_, err := svc.CreateUser(ctx, "", "password123", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser(ctx, "carol@example.com", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(store.NewGormStore(db))

	user, err := svc.CreateUser(ctx, "dave@example.com", "correct-horse", "")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "correct-horse") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong-horse") {
		t.Error("expected wrong password to fail")
	}
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(store.NewGormStore(db))

	created, err := svc.CreateUser(ctx, "erin@example.com", "password123", "Erin")
	testutil.AssertNoError(t, err)

	found, err := svc.GetUserByEmail(ctx, "ERIN@example.com")
	testutil.AssertNoError(t, err)
	if found.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, found.ID)
	}

	_, err = svc.GetUserByEmail(ctx, "nobody@example.com")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
