package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artemxpma/ollama-ticket-summary/internal/config"
	"github.com/artemxpma/ollama-ticket-summary/internal/console"
	"github.com/artemxpma/ollama-ticket-summary/internal/jira"
	"github.com/artemxpma/ollama-ticket-summary/internal/observability"
	"github.com/artemxpma/ollama-ticket-summary/internal/snapshot"
	"github.com/artemxpma/ollama-ticket-summary/pkg/util"
)

var (
	maxTickets int
	outFile    string
	jqlFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "jira-fetch",
	Short: "Fetch Jira tickets and save them locally for analysis",
	Long: `jira-fetch pages through a Jira JQL search, accumulates every matching
ticket and writes a timestamped JSON snapshot for the analyzer.

Credentials are read from JIRA_URL, JIRA_USERNAME and JIRA_TOKEN
(environment or .env file).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd)
	},
}

func init() {
	rootCmd.Flags().IntVar(&maxTickets, "max", 0, "maximum tickets to fetch (0 = all available; prompts when omitted)")
	rootCmd.Flags().StringVar(&outFile, "out", "", "snapshot filename (default jira_tickets_<timestamp>.json)")
	rootCmd.Flags().StringVar(&jqlFlag, "jql", "", "JQL query override")
}

func runFetch(cmd *cobra.Command) error {
	printer := console.NewPrinter(os.Stdout)
	printer.Header("Jira Ticket Fetcher")
	printer.Println("========================================")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Jira.Validate(); err != nil {
		printer.Fail("%v", err)
		return util.NewAuthFailed("missing Jira credentials", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := jira.NewClient(cfg.Jira, logger)

	// Authentication failure halts before any fetch attempt.
	user, err := client.Myself(ctx)
	if err != nil {
		printer.Fail("%v", err)
		return err
	}
	printer.OK("Connected to Jira as %s", user)

	jql := cfg.Fetch.JQL
	if jqlFlag != "" {
		jql = jqlFlag
	}

	max := maxTickets
	if !cmd.Flags().Changed("max") {
		max = console.NewPrompter(os.Stdin, printer).MaxTickets()
	}

	stats := observability.NewFetchStats()
	fetcher := jira.NewFetcher(jira.FetcherDependencies{
		Client:   client,
		PageSize: cfg.Fetch.PageSize,
		Logger:   logger,
		Stats:    stats,
	})

	printer.Warn("\nFetching tickets...")
	result := fetcher.FetchAll(ctx, jql, max, func(fetched, total int) {
		printer.Warn("Fetched %d/%d tickets...", fetched, total)
	})

	if result.Partial() {
		printer.Fail("Error fetching tickets: %v", result.Err)
		printer.Warn("Keeping the %d tickets fetched before the failure", len(result.Tickets))
	}
	if len(result.Tickets) == 0 {
		printer.Warn("No tickets were fetched. Check your JQL query or connection.")
		return nil
	}

	printer.OK("Fetched %d tickets total", len(result.Tickets))
	if remaining := result.Remaining(); remaining > 0 {
		printer.Info("%d more tickets available (use a larger --max to fetch more)", remaining)
	}

	printer.TicketTable(result.Tickets)

	now := time.Now()
	path := outFile
	if path == "" {
		path = snapshot.DefaultFilename(now)
	}
	snap := snapshot.New(now, jql, result.Tickets)
	if err := snapshot.Save(path, snap); err != nil {
		printer.Fail("%v", err)
		return err
	}
	printer.OK("Tickets saved to %s", path)
	printer.Info("Next step: run 'jira-analyze %s' to analyze the data", path)

	logger.Info("fetch summary",
		zap.Int("tickets", len(result.Tickets)),
		zap.Int64("pages", stats.Pages()),
		zap.Int64("pageFailures", stats.Failures()),
		zap.String("jql", jql),
		zap.String("file", path),
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("error: %s", util.ToPipelineError(err).Code)
		os.Exit(1)
	}
}
