package analysis

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
)

// FailureSentinel is returned to the user when the completion call fails;
// the failure is reported but never aborts the whole run.
const FailureSentinel = "Analysis failed. Please check Ollama connection."

// ErrNoTickets signals an empty snapshot; no completion request is issued.
var ErrNoTickets = errors.New("no tickets to analyze")

// ChatClient is the blocking text-completion surface the analyzer uses.
type ChatClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Analyzer turns a snapshot into free-form analysis text.
type Analyzer struct {
	chat   ChatClient
	logger *zap.Logger
}

// NewAnalyzer constructs the analyzer.
func NewAnalyzer(chat ChatClient, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{chat: chat, logger: logger}
}

// Analyze projects the snapshot's tickets, prepends the kind's instruction
// and submits the combined prompt in one blocking call. A completion
// failure yields the sentinel text, not an error.
func (a *Analyzer) Analyze(ctx context.Context, snap *domain.Snapshot, kind Kind) (string, error) {
	if snap == nil || len(snap.Tickets) == 0 {
		return "", ErrNoTickets
	}

	prompt := kind.Instruction() + ProjectTickets(snap.Tickets)

	a.logger.Info("analyzing tickets",
		zap.String("kind", kind.String()),
		zap.String("model", a.chat.Model()),
		zap.Int("tickets", len(snap.Tickets)),
		zap.Int("promptBytes", len(prompt)),
	)

	response, err := a.chat.Chat(ctx, prompt)
	if err != nil {
		a.logger.Error("completion request failed", zap.Error(err))
		return FailureSentinel, nil
	}
	return response, nil
}
