package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/agentstation/giftledger/pkg/errors"
	"github.com/agentstation/giftledger/pkg/ledger"
	"github.com/agentstation/giftledger/pkg/logging"
)

// bannerPattern matches the non-data report banner and footer lines the
// payment processor embeds in its settlement export.
var bannerPattern = regexp.MustCompile(`(Detail report)|(Created on)|(Overall Totals)`)

// LoadPayments parses the payment-processor settlement export.
//
// The raw export is a report, not a clean table: it carries banner/footer
// lines, pads cells with leading whitespace, and ends with an overall-totals
// summary line. A pre-pass strips the banner lines and the whitespace, writes
// the cleaned rows to cleanedPath in the input column order, and captures the
// final raw row verbatim. The totals row is returned separately for the ledger
// report trailer; it never becomes a PaymentRecord and never enters the join.
func LoadPayments(ctx context.Context, path, cleanedPath string) ([]ledger.PaymentRecord, []string, error) {
	cleaned, totals, err := cleanSettlementReport(path)
	if err != nil {
		return nil, nil, errors.WrapLoad("payments", path, err)
	}

	if err := writeRows(cleanedPath, cleaned); err != nil {
		return nil, nil, errors.WrapLoad("payments", path, err)
	}
	logging.FromContext(ctx).Info().
		Str("path", cleanedPath).
		Int("rows", len(cleaned)).
		Msg("Wrote cleaned settlement export")

	records, err := parsePayments(path, cleaned)
	if err != nil {
		return nil, nil, errors.WrapLoad("payments", path, err)
	}

	logging.FromContext(ctx).Info().
		Str("source", "payments").
		Str("path", path).
		Int("rows", len(records)).
		Msg("Loaded settlement export")

	return records, totals, nil
}

// cleanSettlementReport reads the raw settlement export, drops banner/footer
// and blank lines, and left-trims every cell. It returns the cleaned rows and
// the final raw row (the overall-totals summary) verbatim.
func cleanSettlementReport(path string) (cleaned [][]string, totals []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Banner lines have arbitrary shapes; field counts are enforced against
	// the header row later, once the banners are gone.
	r.FieldsPerRecord = -1

	raw, err := r.ReadAll()
	if err != nil {
		return nil, nil, errors.WrapParse("csv", path, err)
	}
	if len(raw) == 0 {
		return nil, nil, errors.NewParseError("csv", path, "empty settlement export", errors.ErrMalformedSource)
	}

	// The overall-totals summary is the last line of the raw report.
	totals = raw[len(raw)-1]

	for _, row := range raw {
		if bannerPattern.MatchString(strings.Join(row, ",")) {
			continue
		}
		trimmed := make([]string, len(row))
		for i, cell := range row {
			trimmed[i] = strings.TrimLeftFunc(cell, unicode.IsSpace)
		}
		cleaned = append(cleaned, trimmed)
	}
	if len(cleaned) == 0 {
		return nil, nil, errors.NewParseError("csv", path, "no data rows after banner strip", errors.ErrMalformedSource)
	}

	return cleaned, totals, nil
}

// parsePayments maps the cleaned rows, header first, into PaymentRecords.
func parsePayments(path string, cleaned [][]string) ([]ledger.PaymentRecord, error) {
	t := newTable(path, cleaned)

	records := make([]ledger.PaymentRecord, 0, len(t.rows))
	for i, row := range t.rows {
		if len(row) != len(t.headers) {
			return nil, &errors.ParseError{
				Format:  "csv",
				File:    path,
				Line:    i + 2, // header is line 1
				Message: fmt.Sprintf("row has %d fields, header has %d", len(row), len(t.headers)),
				Err:     errors.ErrMalformedSource,
			}
		}
		records = append(records, ledger.PaymentRecord{
			TransactionID:   t.field(row, "Transaction"),
			SettleDate:      t.field(row, "Settle Date"),
			UserID:          t.field(row, "User ID"),
			CardDescription: t.field(row, "Card Description"),
			GiftDescription: t.field(row, "Description"),

			FirstName:   t.field(row, "First Name"),
			LastName:    t.field(row, "Last Name"),
			DonorID:     t.field(row, "Donor ID"),
			Address1:    t.field(row, "Address1"),
			Address2:    t.field(row, "Address2"),
			City:        t.field(row, "City"),
			State:       t.field(row, "State/Province"),
			Zip:         t.field(row, "Postal code"),
			PhoneNumber: t.field(row, "Phone"),
			Email:       t.field(row, "Email Address"),

			GiftDesignation:  t.field(row, "Gift Designation"),
			GiftDesignation2: t.field(row, "Gift Designation 2"),
			Comments:         t.field(row, "Comments"),
			MemInHonor:       t.field(row, "Memorial In Honor Of"),
			NextOfKin:        t.field(row, "Next of Kin"),
			PledgeNumber:     t.field(row, "Pledge Number"),

			TotalGiftAmount: t.field(row, "Amount"),
			GiftAmount:      t.field(row, "Gift Amount"),
			GiftAmount2:     t.field(row, "Gift Amount 2"),

			SolicitationCode: t.field(row, "Solicitation Code"),
			TranType:         t.field(row, "Tran Type"),
			BatchNum:         t.field(row, "Batch Number"),
		})
	}

	return records, nil
}

// writeRows writes raw rows to a freshly created CSV file.
func writeRows(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}
