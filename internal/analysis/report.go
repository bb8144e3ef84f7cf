package analysis

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
	"github.com/artemxpma/ollama-ticket-summary/pkg/util"
)

const headerRule = "============================================================"

// ReportMeta is the provenance recorded alongside every analysis.
type ReportMeta struct {
	Kind        Kind
	GeneratedAt time.Time
	RunID       string
	Snapshot    *domain.Snapshot
	Model       string
}

// NewReportMeta stamps provenance for one analysis run.
func NewReportMeta(kind Kind, now time.Time, snap *domain.Snapshot, model string) ReportMeta {
	return ReportMeta{
		Kind:        kind,
		GeneratedAt: now,
		RunID:       uuid.NewString(),
		Snapshot:    snap,
		Model:       model,
	}
}

// DefaultReportFilename returns the timestamped name used when none is given.
func DefaultReportFilename(kind Kind, now time.Time) string {
	return fmt.Sprintf("ticket_analysis_%s_%s.txt", kind, now.Format("20060102_150405"))
}

// WriteReport persists the analysis with its provenance header in one
// whole-buffer write.
func WriteReport(path string, meta ReportMeta, analysis string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket Analysis (%s) - %s\n", meta.Kind.Title(), meta.GeneratedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(headerRule + "\n\n")
	fmt.Fprintf(&b, "Analysis ID: %s\n", meta.RunID)
	fmt.Fprintf(&b, "Source data: %s\n", meta.Snapshot.FetchTimestamp)
	fmt.Fprintf(&b, "JQL Query: %s\n", meta.Snapshot.JQLQuery)
	fmt.Fprintf(&b, "Total tickets analyzed: %d\n", len(meta.Snapshot.Tickets))
	fmt.Fprintf(&b, "AI Model: %s\n", meta.Model)
	b.WriteString("\n" + headerRule + "\n\n")
	b.WriteString(analysis)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return util.NewSnapshotIO(fmt.Sprintf("failed to save analysis to %s", path), err)
	}
	return nil
}
