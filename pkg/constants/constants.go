// Package constants provides shared constants used throughout the giftledger
// codebase. This includes file permissions, directory names, and report naming
// values that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Report naming constants
const (
	// ReportTimestampLayout is the layout for the timestamp embedded in report
	// file names. It uses a 12-hour clock, matching the file names the
	// downstream administrative workflow expects.
	ReportTimestampLayout = "2006-01-02_03_04_05"

	// GiftAdminReportSuffix is the file name suffix for the primary ledger report.
	GiftAdminReportSuffix = "_gift_admin.csv"

	// DataServReportSuffix is the file name suffix for the data-services contact report.
	DataServReportSuffix = "_data_serv.csv"

	// ExportViewReportName is the file name of the standalone CRM export view report.
	ExportViewReportName = "imod_report.csv"

	// CleanedSourcePrefix is prepended to the settlement source file name when
	// writing its cleaned copy.
	CleanedSourcePrefix = "new_"
)

// Defaults for run configuration
const (
	// DefaultOutputDir is where the export view report and cleaned settlement
	// copy are written when no output directory is configured.
	DefaultOutputDir = "."

	// DefaultReportsDir is the directory, relative to the output directory,
	// that holds the timestamped ledger and contact reports. It is treated as
	// scratch space: pre-existing .csv files in it are removed before a run.
	DefaultReportsDir = "reports"

	// DefaultWebUserID is the operator id the payment processor records for
	// gifts made through the web donation page. Card-brand remapping selects
	// web payment-method codes for this operator.
	DefaultWebUserID = "Webpage"
)
