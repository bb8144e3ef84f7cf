package domain

// Placeholder values substituted for optional fields that are absent.
const (
	PlaceholderUnassigned    = "Unassigned"
	PlaceholderUnknown       = "Unknown"
	PlaceholderNoDescription = "No description"
)

// Ticket is one issue-tracker record as returned by the Jira search API.
// It is decoded once at the API boundary and never mutated afterwards.
type Ticket struct {
	Key       string     `json:"key"`
	Fields    Fields     `json:"fields"`
	Changelog *Changelog `json:"changelog,omitempty"`
}

// Fields holds the requested subset of Jira issue fields. Assignee,
// reporter, and description may be absent on the wire.
type Fields struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description,omitempty"`
	Status      *Named        `json:"status,omitempty"`
	Priority    *Named        `json:"priority,omitempty"`
	IssueType   *Named        `json:"issuetype,omitempty"`
	Assignee    *User         `json:"assignee,omitempty"`
	Reporter    *User         `json:"reporter,omitempty"`
	Created     string        `json:"created,omitempty"`
	Updated     string        `json:"updated,omitempty"`
	Comment     *CommentBlock `json:"comment,omitempty"`
}

// Named is any Jira entity referenced only by its display name
// (status, priority, issue type).
type Named struct {
	Name string `json:"name"`
}

// User identifies a Jira account by display name.
type User struct {
	DisplayName string `json:"displayName"`
}

// CommentBlock wraps the comment list the way the search API nests it.
type CommentBlock struct {
	Comments []Comment `json:"comments"`
}

// Comment is a single ticket comment in storage (chronological) order.
type Comment struct {
	Author User   `json:"author"`
	Body   string `json:"body"`
}

// Changelog carries the ordered change history of a ticket.
type Changelog struct {
	Histories []History `json:"histories"`
}

// History is one changelog entry: an author plus the field changes
// applied in that edit.
type History struct {
	Author User         `json:"author"`
	Items  []ChangeItem `json:"items"`
}

// ChangeItem records one field transition inside a history entry.
type ChangeItem struct {
	Field      string `json:"field"`
	FromString string `json:"fromString"`
	ToString   string `json:"toString"`
}

// SearchResponse is one page of the Jira search endpoint.
type SearchResponse struct {
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Total      int      `json:"total"`
	Issues     []Ticket `json:"issues"`
}

// StatusName returns the status display name or the unknown placeholder.
func (f Fields) StatusName() string {
	if f.Status == nil || f.Status.Name == "" {
		return PlaceholderUnknown
	}
	return f.Status.Name
}

// PriorityName returns the priority display name or the unknown placeholder.
func (f Fields) PriorityName() string {
	if f.Priority == nil || f.Priority.Name == "" {
		return PlaceholderUnknown
	}
	return f.Priority.Name
}

// IssueTypeName returns the issue type display name or the unknown placeholder.
func (f Fields) IssueTypeName() string {
	if f.IssueType == nil || f.IssueType.Name == "" {
		return PlaceholderUnknown
	}
	return f.IssueType.Name
}

// AssigneeName returns the assignee display name or "Unassigned".
func (f Fields) AssigneeName() string {
	if f.Assignee == nil || f.Assignee.DisplayName == "" {
		return PlaceholderUnassigned
	}
	return f.Assignee.DisplayName
}

// ReporterName returns the reporter display name or the unknown placeholder.
func (f Fields) ReporterName() string {
	if f.Reporter == nil || f.Reporter.DisplayName == "" {
		return PlaceholderUnknown
	}
	return f.Reporter.DisplayName
}

// CreatedDate returns the date portion of the created timestamp.
func (f Fields) CreatedDate() string {
	return datePart(f.Created)
}

// UpdatedDate returns the date portion of the updated timestamp.
func (f Fields) UpdatedDate() string {
	return datePart(f.Updated)
}

// Comments returns the comment list, which may be empty.
func (f Fields) Comments() []Comment {
	if f.Comment == nil {
		return nil
	}
	return f.Comment.Comments
}

// Histories returns the changelog entries, which may be empty.
func (t Ticket) Histories() []History {
	if t.Changelog == nil {
		return nil
	}
	return t.Changelog.Histories
}

// datePart keeps the first 10 characters of an ISO-8601 timestamp,
// discarding time of day.
func datePart(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}
