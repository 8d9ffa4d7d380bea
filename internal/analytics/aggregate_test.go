package analytics

import (
	"testing"

	"fintrack/internal/models"
)

func expense(category string, amount int64) models.Transaction {
	return models.Transaction{Type: models.TransactionTypeExpense, Category: category, Amount: amount}
}

func income(category string, amount int64) models.Transaction {
	return models.Transaction{Type: models.TransactionTypeIncome, Category: category, Amount: amount}
}

func TestExpensesByCategory(t *testing.T) {
	t.Run("empty_input", func(t *testing.T) {
		result := ExpensesByCategory(nil)
		if len(result) != 0 {
			t.Errorf("expected empty result, got %v", result)
		}
	})

	t.Run("income_only", func(t *testing.T) {
		result := ExpensesByCategory([]models.Transaction{
			income("Salary", 50000),
			income("Bonus", 10000),
		})
		if len(result) != 0 {
			t.Errorf("expected empty result for income-only input, got %v", result)
		}
	})

	t.Run("sums_and_preserves_first_seen_order", func(t *testing.T) {
		result := ExpensesByCategory([]models.Transaction{
			expense("A", 100),
			expense("B", 50),
			expense("A", 25),
		})

		want := []CategoryTotal{{Category: "A", Total: 125}, {Category: "B", Total: 50}}
		if len(result) != len(want) {
			t.Fatalf("expected %d categories, got %d", len(want), len(result))
		}
		for i := range want {
			if result[i] != want[i] {
				t.Errorf("position %d: expected %+v, got %+v", i, want[i], result[i])
			}
		}
	})

	t.Run("mixed_income_excluded", func(t *testing.T) {
		result := ExpensesByCategory([]models.Transaction{
			expense("Transport", 150),
			income("Salary", 50000),
			expense("Transport", 350),
		})

		if len(result) != 1 {
			t.Fatalf("expected 1 category, got %d", len(result))
		}
		if result[0].Category != "Transport" || result[0].Total != 500 {
			t.Errorf("expected Transport=500, got %+v", result[0])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []models.Transaction{expense("A", 1), expense("B", 2)}
		first := ExpensesByCategory(input)
		second := ExpensesByCategory(input)
		if len(first) != len(second) {
			t.Fatalf("repeated calls disagree: %v vs %v", first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("repeated calls disagree at %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

func TestTotalBalance(t *testing.T) {
	accounts := []models.Account{
		{Balance: 52000_00},
		{Balance: 128000_00},
		{Balance: -500_00},
	}
	if got := TotalBalance(accounts); got != 179500_00 {
		t.Errorf("expected 17950000, got %d", got)
	}

	if got := TotalBalance(nil); got != 0 {
		t.Errorf("expected 0 for no accounts, got %d", got)
	}
}
