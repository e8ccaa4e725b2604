package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentstation/giftledger/pkg/logging"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
	if app.Config().OutputDir == "" {
		t.Error("Config() has no output directory default")
	}
	if app.Config().ReportsDir == "" {
		t.Error("Config() has no reports directory default")
	}
}

// TestApp_Options verifies functional options override the defaults.
func TestApp_Options(t *testing.T) {
	cfg := &Config{OutputDir: "/tmp/out", ReportsDir: "r"}
	logger := logging.NewNopLogger()

	app, err := New("dev", "none", "unknown", "test", WithConfig(cfg), WithLogger(logger))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Config() != cfg {
		t.Error("WithConfig() did not replace the configuration")
	}
	if app.Logger() != logger {
		t.Error("WithLogger() did not replace the logger")
	}
}

// TestDetermineLogLevel verifies the flag precedence rules.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"verbose", Config{Verbose: true}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"both flags prefer quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit wins over verbose", Config{Verbose: true, LogLevel: "error"}, "error"},
		{"invalid explicit falls back", Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := determineLogLevel(&tt.config); got != tt.want {
				t.Errorf("determineLogLevel() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestUpdateFromFlags verifies flag values take precedence.
func TestUpdateFromFlags(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}

	cfg.UpdateFromFlags(true, false, true, "")
	if !cfg.Verbose || cfg.Quiet || !cfg.NoColor {
		t.Errorf("UpdateFromFlags() bools not applied: %+v", cfg)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("empty flag level overwrote configured level: %s", cfg.LogLevel)
	}

	cfg.UpdateFromFlags(false, false, false, "debug")
	if cfg.LogLevel != "debug" {
		t.Errorf("explicit flag level not applied: %s", cfg.LogLevel)
	}
}

// TestApp_Execute runs the whole command against fixture exports.
func TestApp_Execute(t *testing.T) {
	dir := t.TempDir()
	settlement := filepath.Join(dir, "settlement.csv")
	contacts := filepath.Join(dir, "contacts.csv")
	designations := filepath.Join(dir, "designations.csv")

	writeFixture(t, settlement, strings.Join([]string{
		"Transaction,Settle Date,User ID,Card Description,First Name,Last Name,Donor ID,Amount,Gift Amount",
		"P1,01/02/2024,Webpage,VISA,Ann,Adams,B100,50.00,50.00",
		"Overall Totals,,,,,,,50.00,",
	}, "\n"))
	writeFixture(t, contacts, strings.Join([]string{
		"Transaction ID,Last Name,First Name,Customer Trans Number",
		"T1,ADAMS,ANN,P1",
	}, "\n"))
	writeFixture(t, designations, strings.Join([]string{
		"ID,Banner_ID,Transaction ID,Designation Amount,ADBDESG_DESG",
		"1,B100,T1,50.00,LIBR",
	}, "\n"))

	outDir := filepath.Join(dir, "out")
	app, err := New("test", "none", "unknown", "test", WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{settlement, contacts, designations, "--out", outDir, "--quiet"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("ExecuteContext() failed: %v\noutput:\n%s", err, out.String())
	}

	for _, want := range []string{"imod_report.csv", "new_settlement.csv", "_gift_admin.csv", "_data_serv.csv"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "imod_report.csv")); err != nil {
		t.Errorf("export view report not written: %v", err)
	}
}

// TestApp_Execute_WrongArgCount verifies the positional-argument contract.
func TestApp_Execute_WrongArgCount(t *testing.T) {
	app, err := New("test", "none", "unknown", "test", WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"only-one.csv"})

	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("expected an error for a single positional argument")
	}
}

// TestApp_VersionCommand verifies the version subcommand output.
func TestApp_VersionCommand(t *testing.T) {
	app, err := New("9.9.9", "none", "unknown", "test", WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("ExecuteContext() failed: %v", err)
	}
	if !strings.Contains(out.String(), "giftledger 9.9.9") {
		t.Errorf("version output = %q, want it to contain %q", out.String(), "giftledger 9.9.9")
	}
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}
