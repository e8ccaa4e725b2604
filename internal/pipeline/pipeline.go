// Package pipeline orchestrates one reconciliation run: load the three
// sources into the staging store, build the export view, join the settled
// payments against it, derive, order, and emit the reports. The run's
// temporary state — store, timestamp, totals line — is threaded explicitly
// through the stages; nothing here is ambient or reused across runs.
package pipeline

import (
	"context"
	"path/filepath"

	"github.com/agentstation/giftledger/internal/derive"
	"github.com/agentstation/giftledger/internal/report"
	"github.com/agentstation/giftledger/internal/sources"
	"github.com/agentstation/giftledger/internal/staging"
	"github.com/agentstation/giftledger/pkg/constants"
	"github.com/agentstation/giftledger/pkg/logging"
)

// Config is one run's inputs and destinations.
type Config struct {
	// The three source exports, as given on the command line.
	PaymentsPath     string
	ExportsPath      string
	DesignationsPath string

	// OutputDir receives the export view report and the cleaned settlement
	// copy; the timestamped reports go to ReportsDir beneath it. Both are
	// created if absent.
	OutputDir  string
	ReportsDir string

	// Rules are the derivation coding tables; nil means the built-in defaults.
	Rules *derive.Rules
}

// Result reports what a completed run produced.
type Result struct {
	ExportViewReport string
	CleanedSource    string
	GiftAdminReport  string
	DataServReport   string

	Views int // export view rows
	Gifts int // merged gifts before split expansion
	Rows  int // ledger report rows after split expansion
}

// Run executes the whole pipeline. It either completes and returns the paths
// of everything it wrote, or returns the first fatal error; the streamed
// reports may then be partial and must not be trusted.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	log := logging.FromContext(ctx)

	if cfg.OutputDir == "" {
		cfg.OutputDir = constants.DefaultOutputDir
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = constants.DefaultReportsDir
	}
	rules := cfg.Rules
	if rules == nil {
		rules = derive.Default()
	}

	reportsDir := filepath.Join(cfg.OutputDir, cfg.ReportsDir)
	if err := report.PrepareDirs(ctx, cfg.OutputDir, reportsDir); err != nil {
		return nil, err
	}
	timestamp := report.Timestamp()

	// Stage the CRM relations and build the export view first: it is both a
	// standalone report and the right side of the payment join.
	store := staging.New()

	designations, err := sources.LoadDesignations(ctx, cfg.DesignationsPath)
	if err != nil {
		return nil, err
	}
	store.AddDesignations(designations...)

	exports, err := sources.LoadExports(ctx, cfg.ExportsPath)
	if err != nil {
		return nil, err
	}
	store.AddExports(exports...)

	views := store.ExportViews()
	log.Info().Int("views", len(views)).Msg("Built export view")

	res := &Result{
		ExportViewReport: filepath.Join(cfg.OutputDir, constants.ExportViewReportName),
		CleanedSource: filepath.Join(cfg.OutputDir,
			constants.CleanedSourcePrefix+filepath.Base(cfg.PaymentsPath)),
		GiftAdminReport: filepath.Join(reportsDir, timestamp+constants.GiftAdminReportSuffix),
		DataServReport:  filepath.Join(reportsDir, timestamp+constants.DataServReportSuffix),
		Views:           len(views),
	}

	if err := report.WriteExportView(ctx, res.ExportViewReport, views); err != nil {
		return nil, err
	}

	// Settlement export: pre-pass writes the cleaned copy and captures the
	// overall-totals trailer for the ledger report.
	payments, totals, err := sources.LoadPayments(ctx, cfg.PaymentsPath, res.CleanedSource)
	if err != nil {
		return nil, err
	}
	store.AddPayments(payments...)

	gifts := store.MergedGifts(views)
	res.Gifts = len(gifts)
	log.Info().Int("gifts", len(gifts)).Msg("Merged settled payments with export view")

	// Derive, order, fan out the multi-designation splits, emit.
	rules.ApplyAll(gifts)
	report.Sort(gifts)
	rows := derive.Expand(gifts)
	res.Rows = len(rows)

	if err := report.WriteGiftAdmin(ctx, res.GiftAdminReport, rows, totals); err != nil {
		return nil, err
	}
	if err := report.WriteDataServ(ctx, res.DataServReport, gifts); err != nil {
		return nil, err
	}

	log.Info().
		Int("gifts", res.Gifts).
		Int("rows", res.Rows).
		Str("gift_admin", res.GiftAdminReport).
		Str("data_serv", res.DataServReport).
		Msg("Reconciliation run complete")

	return res, nil
}
