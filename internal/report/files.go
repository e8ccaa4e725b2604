// Package report orders the derived gift set and renders the run's outputs:
// the standalone CRM export view report, the primary gift-administration
// ledger, and the data-services contact report.
package report

import (
	"context"
	"os"
	"path/filepath"

	"github.com/agentstation/utc"

	"github.com/agentstation/giftledger/pkg/constants"
	"github.com/agentstation/giftledger/pkg/errors"
	"github.com/agentstation/giftledger/pkg/logging"
)

// Timestamp returns the file-name timestamp for this run's reports.
func Timestamp() string {
	return utc.Now().Format(constants.ReportTimestampLayout)
}

// PrepareDirs creates the output and reports directories if absent and
// removes every pre-existing .csv file from the reports directory. The
// reports directory is scratch space for the current run only: stale reports
// from earlier runs would be indistinguishable from this run's output to the
// staff who pick them up.
func PrepareDirs(ctx context.Context, outputDir, reportsDir string) error {
	if err := os.MkdirAll(outputDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", outputDir, err)
	}
	if err := os.MkdirAll(reportsDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", reportsDir, err)
	}

	stale, err := filepath.Glob(filepath.Join(reportsDir, "*.csv"))
	if err != nil {
		return errors.WrapIO("glob", reportsDir, err)
	}
	for _, path := range stale {
		if err := os.Remove(path); err != nil {
			return errors.WrapIO("delete", path, err)
		}
	}
	if len(stale) > 0 {
		logging.FromContext(ctx).Info().
			Int("files", len(stale)).
			Str("dir", reportsDir).
			Msg("Removed stale report files")
	}

	return nil
}
