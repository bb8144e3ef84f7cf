package jira

import (
	"context"

	"go.uber.org/zap"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
	"github.com/artemxpma/ollama-ticket-summary/internal/observability"
)

// SearchClient is the page-fetching surface the pagination loop drives.
type SearchClient interface {
	Search(ctx context.Context, jql string, startAt, maxResults int) (*domain.SearchResponse, error)
}

// ProgressFunc is invoked after every fetched page with the accumulated
// count and the server-declared total.
type ProgressFunc func(fetched, total int)

// Result is the outcome of one pagination run. A page failure does not
// discard accumulated tickets: Err records why pagination stopped early and
// callers must treat a non-full result as possibly partial.
type Result struct {
	Tickets []domain.Ticket
	Total   int
	Err     error
}

// Remaining reports how many matching tickets were declared but not fetched.
func (r Result) Remaining() int {
	if n := r.Total - len(r.Tickets); n > 0 {
		return n
	}
	return 0
}

// Partial reports whether pagination ended on a page failure.
func (r Result) Partial() bool {
	return r.Err != nil
}

// Fetcher drives the pagination loop over a search client.
type Fetcher struct {
	client   SearchClient
	pageSize int
	logger   *zap.Logger
	stats    *observability.FetchStats
}

// FetcherDependencies bundles collaborators for the fetcher.
type FetcherDependencies struct {
	Client   SearchClient
	PageSize int
	Logger   *zap.Logger
	Stats    *observability.FetchStats
}

// NewFetcher constructs the fetcher. A non-positive page size falls back
// to the server-friendly batch of 100.
func NewFetcher(deps FetcherDependencies) *Fetcher {
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:   deps.Client,
		pageSize: pageSize,
		logger:   logger,
		stats:    deps.Stats,
	}
}

// FetchAll accumulates every ticket matching jql, page by page, up to max
// (0 means all available). Ordering is the server-declared order; nothing
// is re-sorted or deduplicated locally, so a server mutating ordering
// mid-pagination can surface duplicates in the point-in-time snapshot.
//
// Termination, checked in order each iteration: page failure (partial
// success, accumulated tickets are kept), empty page (guards against a
// total/page mismatch), user cap reached (truncated to exactly max), and
// declared total reached.
func (f *Fetcher) FetchAll(ctx context.Context, jql string, max int, progress ProgressFunc) Result {
	f.logger.Info("fetching tickets",
		zap.String("jql", jql),
		zap.Int("max", max),
		zap.Int("pageSize", f.pageSize),
	)

	var res Result
	startAt := 0

	for {
		page, err := f.client.Search(ctx, jql, startAt, f.pageSize)
		if err != nil {
			f.stats.RecordFailure()
			f.logger.Error("page request failed, keeping accumulated tickets",
				zap.Int("startAt", startAt),
				zap.Int("accumulated", len(res.Tickets)),
				zap.Error(err),
			)
			res.Err = err
			return res
		}

		res.Total = page.Total
		f.logger.Info("page fetched",
			zap.Int("batch", len(page.Issues)),
			zap.Int("total", page.Total),
			zap.Int("startAt", page.StartAt),
		)

		if len(page.Issues) == 0 {
			f.logger.Info("no more tickets to fetch")
			break
		}

		kept := len(page.Issues)
		res.Tickets = append(res.Tickets, page.Issues...)
		if progress != nil {
			progress(len(res.Tickets), res.Total)
		}

		capped := max > 0 && len(res.Tickets) >= max
		if capped {
			// The counter tracks tickets kept, not tickets received, so a
			// cap cutting mid-page does not over-report.
			kept -= len(res.Tickets) - max
			res.Tickets = res.Tickets[:max]
		}
		f.stats.RecordPage(kept)

		if capped {
			f.logger.Info("reached user-specified limit", zap.Int("max", max))
			break
		}
		if len(res.Tickets) >= res.Total {
			f.logger.Info("fetched all available tickets")
			break
		}

		startAt += f.pageSize
	}

	f.logger.Info("fetch complete",
		zap.Int("fetched", len(res.Tickets)),
		zap.Int("totalAvailable", res.Total),
	)
	return res
}
