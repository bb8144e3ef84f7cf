package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/artemxpma/ollama-ticket-summary/internal/config"
	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
	"github.com/artemxpma/ollama-ticket-summary/pkg/util"
)

// searchFields lists the issue fields requested on every search page.
const searchFields = "key,summary,description,status,priority,assignee,reporter,created,updated,issuetype,components,labels,comment,changelog"

// Client talks to the Jira REST v2 API with basic credentials.
type Client struct {
	baseURL  string
	username string
	token    string
	http     *http.Client
	logger   *zap.Logger
}

// NewClient constructs a Jira client from configuration.
func NewClient(cfg config.JiraConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		token:    cfg.Token,
		http:     &http.Client{Timeout: cfg.Timeout()},
		logger:   logger,
	}
}

// Myself probes connectivity via the current-user endpoint and returns the
// authenticated account's display name.
func (c *Client) Myself(ctx context.Context) (string, error) {
	c.logger.Info("testing Jira connection", zap.String("url", c.baseURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/api/2/myself", nil)
	if err != nil {
		return "", util.NewAuthFailed("failed to build connection test request", err)
	}
	req.SetBasicAuth(c.username, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", util.NewAuthFailed("Jira connection error", err)
	}
	defer resp.Body.Close()

	c.logger.Info("connection test status", zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return "", util.NewAuthFailed(fmt.Sprintf("Jira connection failed: HTTP %d", resp.StatusCode), nil)
	}

	var user struct {
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", util.NewAuthFailed("failed to decode current user response", err)
	}
	if user.DisplayName == "" {
		user.DisplayName = domain.PlaceholderUnknown
	}

	c.logger.Info("connected to Jira", zap.String("user", user.DisplayName))
	return user.DisplayName, nil
}

// Search requests one page of issues matching the JQL query, expanding the
// changelog. The response shape is validated by the decode: anything
// malformed fails the page.
func (c *Client) Search(ctx context.Context, jql string, startAt, maxResults int) (*domain.SearchResponse, error) {
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("startAt", strconv.Itoa(startAt))
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("fields", searchFields)
	params.Set("expand", "changelog")

	c.logger.Info("requesting search page",
		zap.String("jql", jql),
		zap.Int("startAt", startAt),
		zap.Int("maxResults", maxResults),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/api/2/search?"+params.Encode(), nil)
	if err != nil {
		return nil, util.NewFetchFailed("failed to build search request", err)
	}
	req.SetBasicAuth(c.username, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, util.NewFetchFailed("search request failed", err)
	}
	defer resp.Body.Close()

	c.logger.Info("search page response", zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error("search page rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, util.NewFetchFailed(fmt.Sprintf("failed to fetch tickets: HTTP %d", resp.StatusCode), nil)
	}

	var page domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, util.NewFetchFailed("malformed search response", err)
	}
	return &page, nil
}
