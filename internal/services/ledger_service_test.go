package services

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

func TestRecordTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("income_increases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000_00)

		txn, updated, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeIncome, 5000_00, "Salary", "May salary", time.Now())
		testutil.AssertNoError(t, err)

		if txn.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if txn.Amount != 5000_00 {
			t.Errorf("expected amount 500000, got %d", txn.Amount)
		}
		if updated.Balance != 6000_00 {
			t.Errorf("expected returned balance 600000, got %d", updated.Balance)
		}

		stored, err := st.AccountByID(ctx, user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if stored.Balance != 6000_00 {
			t.Errorf("expected stored balance 600000, got %d", stored.Balance)
		}
	})

	t.Run("expense_decreases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 10000_00)

		_, updated, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeExpense, 3000_00, "Food & Dining", "", time.Now())
		testutil.AssertNoError(t, err)

		if updated.Balance != 7000_00 {
			t.Errorf("expected balance 700000, got %d", updated.Balance)
		}
	})

	t.Run("amount_stays_non_negative_for_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		txn, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeExpense, 150_00, "Transport", "", time.Now())
		testutil.AssertNoError(t, err)

		if txn.Amount != 150_00 {
			t.Errorf("expected stored amount 15000 (direction carried by type), got %d", txn.Amount)
		}
	})

	t.Run("zero_amount_refused_state_unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000_00)

		_, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeIncome, 0, "Salary", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		assertLedgerState(t, st, user.ID, account.ID, 1000_00, 0)
	})

	t.Run("negative_amount_refused_state_unchanged", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000_00)

		_, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeExpense, -100, "Transport", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		assertLedgerState(t, st, user.ID, account.ID, 1000_00, 0)
	})

	t.Run("unknown_account_refused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestAccount(t, db, user.ID)

		_, _, err := svc.RecordTransaction(ctx, user.ID, "00000000-0000-0000-0000-000000000000", models.TransactionTypeIncome, 1000, "Salary", "", time.Now())
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

		_, total, err := st.TransactionsByUser(ctx, user.ID, 0, 0)
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected no transactions recorded, got %d", total)
		}
	})

	t.Run("no_accounts_at_all", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)

		_, _, err := svc.RecordTransaction(ctx, user.ID, "", models.TransactionTypeExpense, 1000, "Transport", "", time.Now())
		testutil.AssertAppError(t, err, "NO_ACCOUNTS")
	})

	t.Run("other_users_account_refused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, owner.ID, 1000_00)
		testutil.CreateTestAccount(t, db, intruder.ID)

		_, _, err := svc.RecordTransaction(ctx, intruder.ID, account.ID, models.TransactionTypeExpense, 500, "Shopping", "", time.Now())
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")

		assertLedgerState(t, st, owner.ID, account.ID, 1000_00, 0)
	})

	t.Run("unsupported_type_refused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		_, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionType("transfer"), 1000, "Other", "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("default_date_when_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(store.NewGormStore(db))
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		txn, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeIncome, 1000, "Salary", "", time.Time{})
		testutil.AssertNoError(t, err)

		if txn.Date.IsZero() {
			t.Error("expected date to be defaulted to now, got zero")
		}
	})
}

// Scenario from the dashboard flow: balance 1000.00, expense 150.00,
// then income 2000.00, with the listing most-recent-first.
func TestLedgerScenario(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	st := store.NewGormStore(db)
	svc := NewLedgerService(st)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000_00)

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	_, updated, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeExpense, 150_00, "Food & Dining", "Lunch", base)
	testutil.AssertNoError(t, err)
	if updated.Balance != 850_00 {
		t.Fatalf("after expense: expected balance 85000, got %d", updated.Balance)
	}

	list, err := svc.RecentTransactions(ctx, user.ID, 5)
	testutil.AssertNoError(t, err)
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(list))
	}

	_, updated, err = svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeIncome, 2000_00, "Salary", "", base.Add(24*time.Hour))
	testutil.AssertNoError(t, err)
	if updated.Balance != 2850_00 {
		t.Fatalf("after income: expected balance 285000, got %d", updated.Balance)
	}

	list, err = svc.RecentTransactions(ctx, user.ID, 5)
	testutil.AssertNoError(t, err)
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].Type != models.TransactionTypeIncome {
		t.Errorf("expected most recent transaction first, got %s", list[0].Type)
	}
}

func TestGetUserTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered_and_paginated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			_, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeIncome, int64(i+1)*100, "Salary", "", base.Add(time.Duration(i)*time.Hour))
			testutil.AssertNoError(t, err)
		}

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		result, err := svc.GetUserTransactions(ctx, user.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 5 {
			t.Errorf("expected total 5, got %d", result.TotalItems)
		}
		if len(result.Data) != 2 {
			t.Fatalf("expected 2 items on page, got %d", len(result.Data))
		}
		if result.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", result.TotalPages)
		}
		if result.Data[0].Amount != 500 {
			t.Errorf("expected most recent transaction (amount 500) first, got %d", result.Data[0].Amount)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewGormStore(db)
		svc := NewLedgerService(st)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account1 := testutil.CreateTestAccount(t, db, user1.ID)
		testutil.CreateTestTransaction(t, db, user1.ID, account1.ID, models.TransactionTypeIncome, 1000)

		result, err := svc.GetUserTransactions(ctx, user2.ID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected no transactions for other user, got %d", result.TotalItems)
		}
	})
}

func TestRecentTransactionsBounded(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	st := store.NewGormStore(db)
	svc := NewLedgerService(st)
	user := testutil.CreateTestUser(t, db)
	account := testutil.CreateTestAccount(t, db, user.ID)

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		_, _, err := svc.RecordTransaction(ctx, user.ID, account.ID, models.TransactionTypeExpense, int64(i+1)*100, "Shopping", "", base.Add(time.Duration(i)*time.Hour))
		testutil.AssertNoError(t, err)
	}

	recent, err := svc.RecentTransactions(ctx, user.ID, 5)
	testutil.AssertNoError(t, err)
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent transactions, got %d", len(recent))
	}
	if recent[0].Amount != 800 {
		t.Errorf("expected newest transaction first, got amount %d", recent[0].Amount)
	}
}

// assertLedgerState checks the account balance and transaction count.
func assertLedgerState(t *testing.T, st store.Store, userID, accountID string, wantBalance int64, wantCount int64) {
	t.Helper()
	ctx := context.Background()

	account, err := st.AccountByID(ctx, userID, accountID)
	testutil.AssertNoError(t, err)
	if account.Balance != wantBalance {
		t.Errorf("expected balance %d, got %d", wantBalance, account.Balance)
	}

	_, total, err := st.TransactionsByUser(ctx, userID, 0, 0)
	testutil.AssertNoError(t, err)
	if total != wantCount {
		t.Errorf("expected %d transactions, got %d", wantCount, total)
	}
}
