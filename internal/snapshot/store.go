package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
	"github.com/artemxpma/ollama-ticket-summary/pkg/util"
)

// DefaultFilename returns the timestamped name used when none is given.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("jira_tickets_%s.json", now.Format("20060102_150405"))
}

// New assembles a snapshot from a fetch result.
func New(now time.Time, jql string, tickets []domain.Ticket) *domain.Snapshot {
	return &domain.Snapshot{
		FetchTimestamp: now.Format(time.RFC3339),
		JQLQuery:       jql,
		TotalTickets:   len(tickets),
		Tickets:        tickets,
	}
}

// Save writes the snapshot as indented UTF-8 JSON in one whole-buffer write.
func Save(path string, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return util.NewSnapshotIO("failed to encode snapshot", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return util.NewSnapshotIO(fmt.Sprintf("failed to save tickets to %s", path), err)
	}
	return nil
}

// Load reads a snapshot back. A missing file and malformed JSON are
// distinct failures; both abort the operation depending on the file.
func Load(path string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.NewSnapshotIO(fmt.Sprintf("failed to read snapshot %s", path), err)
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, util.NewSnapshotInvalid(fmt.Sprintf("invalid JSON in %s", path), err)
	}
	return &snap, nil
}
