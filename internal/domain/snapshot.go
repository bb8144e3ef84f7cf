package domain

// Snapshot is a persisted point-in-time collection of tickets plus fetch
// provenance. It is the only interchange between the fetch and analyze
// pipelines.
type Snapshot struct {
	FetchTimestamp string   `json:"fetch_timestamp"`
	JQLQuery       string   `json:"jql_query"`
	TotalTickets   int      `json:"total_tickets"`
	Tickets        []Ticket `json:"tickets"`
}
