package observability

import "sync"

// FetchStats provides basic in-memory counters for one fetch run.
type FetchStats struct {
	mu       sync.Mutex
	pages    int64
	tickets  int64
	failures int64
}

// NewFetchStats initializes counter storage.
func NewFetchStats() *FetchStats {
	return &FetchStats{}
}

// RecordPage increments counters for a successfully fetched page.
func (s *FetchStats) RecordPage(ticketCount int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages++
	s.tickets += int64(ticketCount)
}

// RecordFailure increments the page failure counter.
func (s *FetchStats) RecordFailure() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures++
}

// Pages returns the number of pages fetched.
func (s *FetchStats) Pages() int64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages
}

// Tickets returns the number of tickets accumulated.
func (s *FetchStats) Tickets() int64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets
}

// Failures returns the number of failed page requests.
func (s *FetchStats) Failures() int64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}
