package services

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(ctx, user.ID, "Checking", "First National", "#10b981", 45000_00)
		testutil.AssertNoError(t, err)

		if account.ID == "" {
			t.Fatal("expected non-empty account ID")
		}
		if account.Balance != 45000_00 {
			t.Errorf("expected initial balance 4500000, got %d", account.Balance)
		}
		if account.Color != "#10b981" {
			t.Errorf("expected color #10b981, got %s", account.Color)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAccount(ctx, user.ID, "", "Bank", "", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("default_color", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(ctx, user.ID, "Savings", "", "", 0)
		testutil.AssertNoError(t, err)
		if account.Color != models.AccountColors[0] {
			t.Errorf("expected default color, got %s", account.Color)
		}
	})
}

func TestGetUserAccounts(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAccountService(store.NewGormStore(db))
	user1 := testutil.CreateTestUser(t, db)
	user2 := testutil.CreateTestUser(t, db)
	testutil.CreateTestAccount(t, db, user1.ID)
	testutil.CreateTestAccount(t, db, user1.ID)
	testutil.CreateTestAccount(t, db, user2.ID)

	accounts, err := svc.GetUserAccounts(ctx, user1.ID)
	testutil.AssertNoError(t, err)
	if len(accounts) != 2 {
		t.Errorf("expected 2 accounts for user1, got %d", len(accounts))
	}
}

func TestGetAccountByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestAccountWithBalance(t, db, user.ID, 500)

		account, err := svc.GetAccountByID(ctx, user.ID, created.ID)
		testutil.AssertNoError(t, err)
		if account.Balance != 500 {
			t.Errorf("expected balance 500, got %d", account.Balance)
		}
	})

	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		created := testutil.CreateTestAccount(t, db, owner.ID)

		_, err := svc.GetAccountByID(ctx, other.ID, created.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		testutil.AssertNoError(t, svc.DeleteAccount(ctx, user.ID, account.ID))

		_, err := svc.GetAccountByID(ctx, user.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteAccount(ctx, user.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("does_not_cascade_to_transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewAccountService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)
		txn := testutil.CreateTestTransaction(t, db, user.ID, account.ID, models.TransactionTypeExpense, 150_00)

		testutil.AssertNoError(t, svc.DeleteAccount(ctx, user.ID, account.ID))

		// The transaction survives with a dangling account reference.
		transactions, total, err := st.TransactionsByUser(ctx, user.ID, 0, 0)
		testutil.AssertNoError(t, err)
		if total != 1 {
			t.Fatalf("expected 1 surviving transaction, got %d", total)
		}
		if transactions[0].ID != txn.ID || transactions[0].AccountID != account.ID {
			t.Errorf("expected transaction untouched, got %+v", transactions[0])
		}
	})
}
