package models

// Category is a static reference entity used to label transactions.
// Categories are not persisted or user-editable; the catalog below is
// fixed. Transaction category labels conventionally come from this list
// but are not enforced against it.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
	Icon string          `json:"icon"`
}

// DefaultCategories is the fixed category catalog.
var DefaultCategories = []Category{
	{ID: "1", Name: "Food & Dining", Type: TransactionTypeExpense, Icon: "🍔"},
	{ID: "2", Name: "Transport", Type: TransactionTypeExpense, Icon: "🚗"},
	{ID: "3", Name: "Entertainment", Type: TransactionTypeExpense, Icon: "🎮"},
	{ID: "4", Name: "Shopping", Type: TransactionTypeExpense, Icon: "🛍️"},
	{ID: "5", Name: "Healthcare", Type: TransactionTypeExpense, Icon: "🏥"},
	{ID: "6", Name: "Housing", Type: TransactionTypeExpense, Icon: "🏠"},
	{ID: "7", Name: "Salary", Type: TransactionTypeIncome, Icon: "💰"},
	{ID: "8", Name: "Bonus", Type: TransactionTypeIncome, Icon: "🎁"},
	{ID: "9", Name: "Investment", Type: TransactionTypeIncome, Icon: "📈"},
}

// AccountColors is the palette offered for new accounts.
var AccountColors = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#ec4899", "#64748b",
}
