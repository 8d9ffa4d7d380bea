// Package advice formats a bounded summary of a user's financial data
// into a natural-language prompt and delegates to a text-generation
// capability. The response is opaque display text; it is never parsed.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// Fallback messages returned instead of generated text. The operation
// never fails; it degrades to one of these.
const (
	FallbackNoCredential  = "AI advice is unavailable: running in offline mode or no API key is configured."
	FallbackCallFailed    = "An error occurred while fetching AI advice. Please try again later."
	FallbackEmptyResponse = "The AI could not generate advice right now. Please try again later."
)

// maxRecentTransactions bounds how much transaction detail goes into the prompt.
const maxRecentTransactions = 10

// Generator produces text from a prompt. Implemented by the Gemini
// client; tests substitute a stub.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service builds advice prompts and calls a Generator with a timeout and
// a single retry.
type Service struct {
	generator Generator // nil means no credential is configured
	language  string
	timeout   time.Duration
}

// NewService creates an advice service. A nil generator puts the service
// in offline mode: every request returns FallbackNoCredential without
// any network call.
func NewService(generator Generator, language string, timeout time.Duration) *Service {
	if language == "" {
		language = "English"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{generator: generator, language: language, timeout: timeout}
}

// RequestAdvice summarizes the given accounts and transactions, asks the
// generator for advice, and returns the text verbatim. Transactions are
// expected in most-recent-first order; only the first ten are included.
func (s *Service) RequestAdvice(ctx context.Context, accounts []models.Account, transactions []models.Transaction) string {
	if s.generator == nil {
		return FallbackNoCredential
	}

	prompt := s.buildPrompt(accounts, transactions)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		// One bounded retry; the upstream call has no retry of its own.
		text, err = s.generate(ctx, prompt)
	}
	if err != nil {
		logger.Get().Warnw("advice generation failed", "error", err.Error())
		return FallbackCallFailed
	}
	if strings.TrimSpace(text) == "" {
		return FallbackEmptyResponse
	}
	return text
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.generator.GenerateText(ctx, prompt)
}

// recentEntry is the per-transaction tuple serialized into the prompt.
type recentEntry struct {
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

func (s *Service) buildPrompt(accounts []models.Account, transactions []models.Transaction) string {
	recent := transactions
	if len(recent) > maxRecentTransactions {
		recent = recent[:maxRecentTransactions]
	}

	entries := make([]recentEntry, 0, len(recent))
	for _, t := range recent {
		entries = append(entries, recentEntry{
			Amount:   formatCents(t.Amount),
			Type:     string(t.Type),
			Category: t.Category,
			Note:     t.Note,
		})
	}
	// Odd or malformed transaction data is included as-is; the model's
	// own language understanding is trusted to handle anomalies.
	recentJSON, err := json.Marshal(entries)
	if err != nil {
		recentJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("As a senior professional financial advisor, analyze the following financial situation and give concrete advice:\n")
	fmt.Fprintf(&b, "Total account balance: %s\n", formatCents(analytics.TotalBalance(accounts)))
	fmt.Fprintf(&b, "Number of accounts: %d\n", len(accounts))
	fmt.Fprintf(&b, "Recent transactions: %s\n\n", recentJSON)
	b.WriteString("Please provide:\n")
	b.WriteString("1. An observation on the expense distribution.\n")
	b.WriteString("2. One concrete savings or investment suggestion.\n")
	b.WriteString("3. A brief remark on the current financial health (under 100 words).\n")
	fmt.Fprintf(&b, "Please answer in %s.\n", s.language)
	return b.String()
}

// formatCents renders an amount in cents as a decimal string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
