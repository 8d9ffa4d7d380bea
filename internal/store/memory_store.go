package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
)

// MemoryStore is the offline/demo implementation of Store. Nothing is
// persisted; state lives for the lifetime of the process. It is seeded
// with a demo user and sample financial data so every screen has
// something to show.
type MemoryStore struct {
	mu           sync.Mutex
	users        []models.User
	accounts     []models.Account
	transactions []models.Transaction
}

// DemoEmail and DemoPassword are the credentials of the seeded demo user.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewDemoStore creates an in-memory store seeded with the demo user and
// sample accounts and transactions.
func NewDemoStore() *MemoryStore {
	s := NewMemoryStore()
	s.seed()
	return s
}

func (s *MemoryStore) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		logger.Get().Errorw("demo seed failed, store starts empty", "error", err.Error())
		return
	}

	now := time.Now()
	user := models.User{
		Base:        models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:       DemoEmail,
		Password:    string(hash),
		DisplayName: "Demo",
	}
	s.users = append(s.users, user)

	salary := models.Account{
		Base:     models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:   user.ID,
		Name:     "Salary Account",
		BankName: "First National",
		Balance:  52000_00,
		Color:    "#3b82f6",
	}
	savings := models.Account{
		Base:     models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:   user.ID,
		Name:     "Digital Savings",
		BankName: "Neobank",
		Balance:  128000_00,
		Color:    "#10b981",
	}
	s.accounts = append(s.accounts, salary, savings)

	s.transactions = append(s.transactions,
		models.Transaction{
			Base:      models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:    user.ID,
			AccountID: salary.ID,
			Type:      models.TransactionTypeExpense,
			Amount:    3500_00,
			Category:  "Food & Dining",
			Note:      "Dinner with friends",
			Date:      now.Add(-1 * time.Hour),
		},
		models.Transaction{
			Base:      models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:    user.ID,
			AccountID: savings.ID,
			Type:      models.TransactionTypeIncome,
			Amount:    50000_00,
			Category:  "Salary",
			Note:      "December salary",
			Date:      now.Add(-24 * time.Hour),
		},
		models.Transaction{
			Base:      models.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			UserID:    user.ID,
			AccountID: salary.ID,
			Type:      models.TransactionTypeExpense,
			Amount:    150_00,
			Category:  "Transport",
			Note:      "Metro",
			Date:      now.Add(-48 * time.Hour),
		},
	)
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, user.Email) {
			return apperrors.ErrDuplicateEmail
		}
	}

	stamp(&user.Base)
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *MemoryStore) UserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *MemoryStore) CreateAccount(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&account.Base)
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *MemoryStore) AccountsByUser(_ context.Context, userID string) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Account
	for i := range s.accounts {
		if s.accounts[i].UserID == userID {
			out = append(out, s.accounts[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) AccountByID(_ context.Context, userID, accountID string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findAccount(userID, accountID); i >= 0 {
		a := s.accounts[i]
		return &a, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

func (s *MemoryStore) DeleteAccount(_ context.Context, userID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findAccount(userID, accountID)
	if i < 0 {
		return apperrors.ErrAccountNotFound
	}
	// Transactions referencing this account are intentionally left alone.
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	return nil
}

func (s *MemoryStore) ApplyTransaction(_ context.Context, txn *models.Transaction, delta int64) (*models.Transaction, *models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findAccount(txn.UserID, txn.AccountID)
	if i < 0 {
		return nil, nil, apperrors.ErrAccountNotFound
	}

	stamp(&txn.Base)
	s.transactions = append(s.transactions, *txn)
	s.accounts[i].Balance += delta
	s.accounts[i].UpdatedAt = time.Now()

	account := s.accounts[i]
	return txn, &account, nil
}

func (s *MemoryStore) TransactionsByUser(_ context.Context, userID string, limit, offset int) ([]models.Transaction, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []models.Transaction
	for i := range s.transactions {
		if s.transactions[i].UserID == userID {
			all = append(all, s.transactions[i])
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	if limit > 0 {
		if offset >= len(all) {
			return nil, total, nil
		}
		end := offset + limit
		if end > len(all) {
			end = len(all)
		}
		all = all[offset:end]
	}
	return all, total, nil
}

func (s *MemoryStore) findAccount(userID, accountID string) int {
	for i := range s.accounts {
		if s.accounts[i].ID == accountID && s.accounts[i].UserID == userID {
			return i
		}
	}
	return -1
}

func stamp(b *models.Base) {
	now := time.Now()
	if b.ID == "" {
		b.ID = uuid.New()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
}

var _ Store = (*MemoryStore)(nil)
