package jira

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
	"github.com/artemxpma/ollama-ticket-summary/internal/observability"
)

// fakeSearch simulates a server holding total tickets, optionally failing
// or returning an empty page at a given request index (1-based).
type fakeSearch struct {
	total    int
	failAt   int
	emptyAt  int
	requests int
}

func (f *fakeSearch) Search(_ context.Context, _ string, startAt, maxResults int) (*domain.SearchResponse, error) {
	f.requests++
	if f.failAt > 0 && f.requests == f.failAt {
		return nil, errors.New("boom")
	}
	if f.emptyAt > 0 && f.requests == f.emptyAt {
		return &domain.SearchResponse{StartAt: startAt, Total: f.total}, nil
	}
	count := f.total - startAt
	if count < 0 {
		count = 0
	}
	if count > maxResults {
		count = maxResults
	}
	issues := make([]domain.Ticket, count)
	for i := range issues {
		issues[i] = domain.Ticket{Key: fmt.Sprintf("L2-%d", startAt+i+1)}
	}
	return &domain.SearchResponse{StartAt: startAt, Total: f.total, Issues: issues}, nil
}

func newTestFetcher(client SearchClient, stats *observability.FetchStats) *Fetcher {
	return NewFetcher(FetcherDependencies{Client: client, PageSize: 100, Stats: stats})
}

func TestFetchAll_CapSemantics(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		max          int
		wantTickets  int
		wantRequests int
	}{
		{"no cap fetches declared total", 250, 0, 250, 3},
		{"cap below page size issues one request", 500, 50, 50, 1},
		{"cap above total fetches everything", 250, 300, 250, 3},
		{"cap equals total", 200, 200, 200, 2},
		{"empty result set", 0, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &fakeSearch{total: tt.total}
			result := newTestFetcher(server, nil).FetchAll(context.Background(), "project = L2", tt.max, nil)

			assert.Len(t, result.Tickets, tt.wantTickets)
			assert.Equal(t, tt.wantRequests, server.requests)
			assert.Equal(t, tt.total, result.Total)
			assert.False(t, result.Partial())
		})
	}
}

func TestFetchAll_ThreePagesFor250(t *testing.T) {
	server := &fakeSearch{total: 250}
	result := newTestFetcher(server, nil).FetchAll(context.Background(), "project = L2", 0, nil)

	require.Len(t, result.Tickets, 250)
	assert.Equal(t, 3, server.requests)
	assert.Equal(t, "L2-1", result.Tickets[0].Key)
	assert.Equal(t, "L2-250", result.Tickets[249].Key)
	assert.Zero(t, result.Remaining())
}

func TestFetchAll_ShortfallAfterCap(t *testing.T) {
	server := &fakeSearch{total: 500}
	result := newTestFetcher(server, nil).FetchAll(context.Background(), "project = L2", 50, nil)

	require.Len(t, result.Tickets, 50)
	assert.Equal(t, 1, server.requests)
	assert.Equal(t, 450, result.Remaining())
}

func TestFetchAll_PageFailureKeepsAccumulated(t *testing.T) {
	server := &fakeSearch{total: 300, failAt: 2}
	stats := observability.NewFetchStats()
	result := newTestFetcher(server, stats).FetchAll(context.Background(), "project = L2", 0, nil)

	require.True(t, result.Partial())
	assert.Len(t, result.Tickets, 100)
	assert.Less(t, len(result.Tickets), result.Total)
	assert.Equal(t, 200, result.Remaining())
	assert.Equal(t, int64(1), stats.Pages())
	assert.Equal(t, int64(1), stats.Failures())
}

func TestFetchAll_FailureOnFirstPage(t *testing.T) {
	server := &fakeSearch{total: 100, failAt: 1}
	result := newTestFetcher(server, nil).FetchAll(context.Background(), "project = L2", 0, nil)

	assert.True(t, result.Partial())
	assert.Empty(t, result.Tickets)
}

func TestFetchAll_EmptyPageGuard(t *testing.T) {
	// Server declares 200 matches but the second page comes back empty,
	// e.g. the result set shrank mid-pagination.
	server := &fakeSearch{total: 200, emptyAt: 2}
	result := newTestFetcher(server, nil).FetchAll(context.Background(), "project = L2", 0, nil)

	assert.False(t, result.Partial())
	assert.Len(t, result.Tickets, 100)
	assert.Equal(t, 100, result.Remaining())
	assert.Equal(t, 2, server.requests)
}

func TestFetchAll_ProgressReportedPerPage(t *testing.T) {
	server := &fakeSearch{total: 250}
	var seen [][2]int
	newTestFetcher(server, nil).FetchAll(context.Background(), "project = L2", 0, func(fetched, total int) {
		seen = append(seen, [2]int{fetched, total})
	})

	require.Len(t, seen, 3)
	assert.Equal(t, [2]int{100, 250}, seen[0])
	assert.Equal(t, [2]int{200, 250}, seen[1])
	assert.Equal(t, [2]int{250, 250}, seen[2])
}

func TestFetchAll_StatsCountPagesAndTickets(t *testing.T) {
	server := &fakeSearch{total: 250}
	stats := observability.NewFetchStats()
	newTestFetcher(server, stats).FetchAll(context.Background(), "project = L2", 0, nil)

	assert.Equal(t, int64(3), stats.Pages())
	assert.Equal(t, int64(250), stats.Tickets())
	assert.Zero(t, stats.Failures())
}

func TestFetchAll_StatsCountKeptTicketsWhenCapCutsMidPage(t *testing.T) {
	tests := []struct {
		name      string
		max       int
		wantPages int64
	}{
		{"cap inside first page", 50, 1},
		{"cap inside second page", 150, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &fakeSearch{total: 500}
			stats := observability.NewFetchStats()
			result := newTestFetcher(server, stats).FetchAll(context.Background(), "project = L2", tt.max, nil)

			require.Len(t, result.Tickets, tt.max)
			assert.Equal(t, int64(tt.max), stats.Tickets())
			assert.Equal(t, tt.wantPages, stats.Pages())
		})
	}
}
