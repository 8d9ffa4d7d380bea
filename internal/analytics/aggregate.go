// Package analytics derives chart-ready summaries from already-fetched
// transaction data. Everything here is pure: no I/O, deterministic output.
package analytics

import "fintrack/internal/models"

// CategoryTotal is the summed expense amount for one category label.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// ExpensesByCategory sums expense amounts per category label over the
// given transactions, preserving first-seen category order. Income
// transactions are excluded entirely; the aggregation answers "where did
// my money go". An empty input yields an empty result, which callers
// render as an explicit empty state.
func ExpensesByCategory(transactions []models.Transaction) []CategoryTotal {
	totals := []CategoryTotal{}
	index := make(map[string]int)

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if i, ok := index[t.Category]; ok {
			totals[i].Total += t.Amount
			continue
		}
		index[t.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: t.Category, Total: t.Amount})
	}
	return totals
}

// TotalBalance sums the balances of the given accounts.
func TotalBalance(accounts []models.Account) int64 {
	var total int64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}
