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

	"github.com/artemxpma/ollama-ticket-summary/internal/analysis"
	"github.com/artemxpma/ollama-ticket-summary/internal/config"
	"github.com/artemxpma/ollama-ticket-summary/internal/console"
	"github.com/artemxpma/ollama-ticket-summary/internal/domain"
	"github.com/artemxpma/ollama-ticket-summary/internal/observability"
	"github.com/artemxpma/ollama-ticket-summary/internal/ollama"
	"github.com/artemxpma/ollama-ticket-summary/internal/snapshot"
	"github.com/artemxpma/ollama-ticket-summary/pkg/util"
)

var rootCmd = &cobra.Command{
	Use:   "jira-analyze <snapshot.json> [summary|detailed|trends]",
	Short: "Analyze a ticket snapshot with a local Ollama model",
	Long: `jira-analyze loads a snapshot produced by jira-fetch, projects each
ticket into a bounded text block and submits the result to a local Ollama
model. Without an analysis type it enters an interactive menu.

No ticket data leaves the machine.`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args)
	},
}

func runAnalyze(args []string) error {
	printer := console.NewPrinter(os.Stdout)
	printer.Header("Ticket Analyzer with Local AI")
	printer.Println("==================================================")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap, err := snapshot.Load(args[0])
	if err != nil {
		printer.Fail("%v", err)
		return err
	}
	printer.OK("Loaded %d tickets from %s", len(snap.Tickets), args[0])
	printer.Info("Data info:")
	printer.Println("  Fetched:", orUnknown(snap.FetchTimestamp))
	printer.Println("  JQL Query:", orUnknown(snap.JQLQuery))
	printer.Println("  Total tickets:", snap.TotalTickets)

	client := ollama.NewClient(cfg.Ollama)
	model, err := client.EnsureModel(ctx)
	if err != nil {
		printer.Fail("Ollama connection error: %v", err)
		printer.Warn("Make sure Ollama is running: ollama serve")
		return util.NewAnalysisFailed("ollama unavailable", err)
	}
	if model != cfg.Ollama.Model {
		printer.Warn("Model '%s' not found, using '%s' instead", cfg.Ollama.Model, model)
	} else {
		printer.OK("Ollama model '%s' is available", model)
	}

	app := &analyzerApp{
		printer:  printer,
		prompter: console.NewPrompter(os.Stdin, printer),
		analyzer: analysis.NewAnalyzer(client, logger),
		client:   client,
		snap:     snap,
		logger:   logger,
	}

	if len(args) == 2 {
		kind, err := analysis.ParseKind(args[1])
		if err != nil {
			printer.Fail("%v", err)
			return err
		}
		return app.runOnce(ctx, kind)
	}
	return app.runInteractive(ctx)
}

// analyzerApp holds the wiring shared by single-shot and menu modes.
type analyzerApp struct {
	printer  *console.Printer
	prompter *console.Prompter
	analyzer *analysis.Analyzer
	client   *ollama.Client
	snap     *domain.Snapshot
	logger   *zap.Logger
}

// runOnce executes one analysis and always saves the report.
func (a *analyzerApp) runOnce(ctx context.Context, kind analysis.Kind) error {
	text, err := a.analyze(ctx, kind)
	if err != nil || text == "" {
		return err
	}
	return a.save(kind, text)
}

// runInteractive loops over the analysis menu until the user exits.
func (a *analyzerApp) runInteractive(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		switch a.prompter.MenuChoice() {
		case "1":
			a.menuAnalysis(ctx, analysis.KindSummary)
		case "2":
			a.menuAnalysis(ctx, analysis.KindDetailed)
		case "3":
			a.menuAnalysis(ctx, analysis.KindTrends)
		case "4":
			a.printer.TicketTable(a.snap.Tickets)
		case "5", "":
			a.printer.OK("Goodbye!")
			return nil
		default:
			a.printer.Fail("Invalid choice. Please try again.")
		}
	}
}

func (a *analyzerApp) menuAnalysis(ctx context.Context, kind analysis.Kind) {
	text, err := a.analyze(ctx, kind)
	if err != nil || text == "" {
		return
	}
	if a.prompter.ConfirmSave() {
		if err := a.save(kind, text); err != nil {
			a.printer.Fail("%v", err)
		}
	}
}

func (a *analyzerApp) analyze(ctx context.Context, kind analysis.Kind) (string, error) {
	if kind == analysis.KindSummary || kind == analysis.KindDetailed {
		a.printer.TicketTable(a.snap.Tickets)
	}
	a.printer.Warn("\nAnalyzing tickets with %s, this may take a moment...", a.client.Model())

	text, err := a.analyzer.Analyze(ctx, a.snap, kind)
	if err != nil {
		// An empty snapshot issues no completion request.
		a.printer.Warn("There is nothing to analyze: the snapshot contains no tickets")
		return "", nil
	}

	a.printer.Header(fmt.Sprintf("\n%s Analysis:", kind.Title()))
	a.printer.Println(text)
	if text == analysis.FailureSentinel {
		return "", nil
	}
	return text, nil
}

func (a *analyzerApp) save(kind analysis.Kind, text string) error {
	now := time.Now()
	meta := analysis.NewReportMeta(kind, now, a.snap, a.client.Model())
	path := analysis.DefaultReportFilename(kind, now)
	if err := analysis.WriteReport(path, meta, text); err != nil {
		return err
	}
	a.printer.OK("Analysis saved to %s", path)
	a.logger.Info("analysis saved",
		zap.String("kind", kind.String()),
		zap.String("file", path),
		zap.String("runID", meta.RunID),
	)
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return domain.PlaceholderUnknown
	}
	return s
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("error: %s", util.ToPipelineError(err).Code)
		os.Exit(1)
	}
}
