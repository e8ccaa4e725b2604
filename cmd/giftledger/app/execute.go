package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/giftledger/internal/derive"
	"github.com/agentstation/giftledger/internal/pipeline"
	"github.com/agentstation/giftledger/pkg/logging"
)

// Execute runs the giftledger CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "giftledger <settlement-export> <crm-export> <crm-designations>",
		Short:   "Reconcile settlement and CRM gift exports into a unified ledger",
		Version: a.version,
		Long: `Giftledger reconciles the payment processor's settlement export with the
CRM's contact and designations exports into a single unified gift ledger.

It joins the three sources on their shared transaction identifiers, applies
the gift-entry derivation rules (fund and amount fallbacks, payment-method
and tribute coding, phone canonicalization, multi-designation splits), and
writes the gift-administration and data-services reports along with a
standalone CRM export view.`,
		Args:              cobra.ExactArgs(3),
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReconciliation(cmd, args)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.giftledger.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Run flags
	rootCmd.Flags().StringVar(&a.config.OutputDir, "out", a.config.OutputDir, "output directory for the export view report and cleaned settlement copy")
	rootCmd.Flags().StringVar(&a.config.ReportsDir, "reports-dir", a.config.ReportsDir, "timestamped reports directory, relative to the output directory")
	rootCmd.Flags().StringVar(&a.config.RulesFile, "rules", a.config.RulesFile, "YAML file overriding the built-in coding tables")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("giftledger {{.Version}}\n")

	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// runReconciliation wires one pipeline run from the parsed arguments.
func (a *App) runReconciliation(cmd *cobra.Command, args []string) error {
	ctx := logging.WithLogger(cmd.Context(), a.logger)

	rules, err := derive.Load(a.config.RulesFile)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, pipeline.Config{
		PaymentsPath:     args[0],
		ExportsPath:      args[1],
		DesignationsPath: args[2],
		OutputDir:        a.config.OutputDir,
		ReportsDir:       a.config.ReportsDir,
		Rules:            rules,
	})
	if err != nil {
		return err
	}

	cmd.Printf("CSV file %q created!\n", result.ExportViewReport)
	cmd.Printf("CSV file %q created!\n", result.CleanedSource)
	cmd.Printf("CSV file %q created!\n", result.GiftAdminReport)
	cmd.Printf("CSV file %q created!\n", result.DataServReport)
	return nil
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("giftledger %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
