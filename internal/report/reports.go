package report

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/agentstation/giftledger/pkg/errors"
	"github.com/agentstation/giftledger/pkg/ledger"
	"github.com/agentstation/giftledger/pkg/logging"
)

// exportViewHeader is the fixed 16-column layout of the standalone CRM export
// view report.
var exportViewHeader = []string{
	"Last Name",
	"First Name",
	"Banner_ID",
	"Designation Amount",
	"Designation Code",
	"Other Designation",
	"Solicitation Code",
	"Transaction ID",
	"Transaction Number",
	"Anonymous",
	"Gift Matching",
	"Tribute Type",
	"Tribute Occasion",
	"Tribute Notification Name",
	"Tribute Notification Address",
	"Tribute Comments",
}

// giftAdminHeader is the fixed 29-column layout of the primary ledger report.
var giftAdminHeader = []string{
	"settle_date",
	"last_name",
	"first_name",
	"c_last_name",
	"c_first_name",
	"banner_id",
	"pledge_number",
	"amount",
	"pay_method",
	"fund",
	"other_designation",
	"description",
	"tribute_type",
	"tribute_occasion",
	"tribute_notification_name",
	"tribute_notification_address",
	"tribute_comments",
	"anonymous",
	"gcls_code_3",
	"memr_in_honor",
	"next_of_Kin",
	"comments",
	"solc_org",
	"solc_code",
	"match_received",
	"gift_matching",
	"tran_type",
	"C_User ID",
	"C_Batch #",
}

// dataServHeader is the 21-column layout of the data-services contact report;
// rows that matched a CRM contact stop after the first 14 columns.
var dataServHeader = []string{
	"Settle Date",
	"Donor ID",
	"Last Name",
	"First Name",
	"C_Last Name",
	"C_First Name",
	"Address 1",
	"Address 2",
	"City",
	"State",
	"Zip",
	"Phone Type",
	"Phone",
	"Email",
	"C_Address 1",
	"C_Address 2",
	"C_City",
	"C_State",
	"C_Zip",
	"C_Phone",
	"C_Email",
}

// WriteExportView renders the standalone CRM export view report in load
// order. It is produced before the payment join and is not re-sorted.
func WriteExportView(ctx context.Context, path string, views []ledger.ExportView) error {
	return writeCSV(ctx, path, func(w *csv.Writer) error {
		if err := w.Write(exportViewHeader); err != nil {
			return err
		}
		for i := range views {
			v := &views[i]
			row := []string{
				v.LastName,
				v.FirstName,
				v.BannerID,
				v.DesignationAmount,
				v.DesgCode,
				v.OtherDesignation,
				v.SolicitationCode,
				v.TransactionID,
				v.TransNumber,
				v.Anonymous,
				v.GiftMatching,
				v.TributeType,
				v.TributeOccasion,
				v.TributeNotificationName,
				v.TributeNotificationAddress,
				v.TributeComments,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		logging.FromContext(ctx).Info().
			Str("report", path).
			Int("rows", len(views)).
			Msg("Wrote export view report")
		return nil
	})
}

// WriteGiftAdmin renders the primary ledger report: one row per gift in the
// given order (the caller has already sorted and split-expanded them),
// streamed row by row, then a blank separator row and the settlement export's
// verbatim overall-totals line.
func WriteGiftAdmin(ctx context.Context, path string, gifts []*ledger.MergedGift, totals []string) error {
	return writeCSV(ctx, path, func(w *csv.Writer) error {
		if err := w.Write(giftAdminHeader); err != nil {
			return err
		}
		for _, g := range gifts {
			if err := w.Write(giftAdminRow(g)); err != nil {
				return err
			}
		}

		// Trailer: blank separator, then the totals line from the source.
		if err := w.Write([]string{""}); err != nil {
			return err
		}
		if err := w.Write(totals); err != nil {
			return err
		}

		logging.FromContext(ctx).Info().
			Str("report", path).
			Int("rows", len(gifts)).
			Msg("Wrote gift admin report")
		return nil
	})
}

// giftAdminRow shapes one ledger line. The gcls_code_3 and solc_org columns
// are always empty: they exist for the gift-entry system's import template,
// which fills them downstream.
func giftAdminRow(g *ledger.MergedGift) []string {
	return []string{
		g.SettleDate,
		g.LastName,
		g.FirstName,
		g.PayerLastName,
		g.PayerFirstName,
		g.BannerID,
		g.PledgeNumber,
		g.DesignationAmount,
		g.CardDescription,
		g.DesgCode,
		g.OtherDesignation,
		g.GiftDescription,
		g.TributeType,
		g.TributeOccasion,
		g.TributeNotificationName,
		g.TributeNotificationAddress,
		g.TributeComments,
		g.Anonymous,
		"", // gcls_code_3
		g.MemInHonor,
		g.NextOfKin,
		g.Comments,
		"", // solc_org
		g.SolicitationCode,
		g.MatchReceived,
		g.GiftMatching,
		g.TranType,
		g.UserID,
		g.BatchNum,
	}
}

// WriteDataServ renders the data-services contact report: one row per merged
// gift (split lines are not repeated here — they differ only in fund fields
// the contact report doesn't carry), in the same order as the ledger report.
// The seven payer-contact columns are appended only when the gift matched no
// CRM contact, so data services sees the processor's contact data exactly
// when the CRM has none.
func WriteDataServ(ctx context.Context, path string, gifts []*ledger.MergedGift) error {
	return writeCSV(ctx, path, func(w *csv.Writer) error {
		if err := w.Write(dataServHeader); err != nil {
			return err
		}
		for _, g := range gifts {
			row := []string{
				g.SettleDate,
				g.BannerID,
				g.LastName,
				g.FirstName,
				g.PayerLastName,
				g.PayerFirstName,
				g.Address1,
				g.Address2,
				g.City,
				g.State,
				g.Zip,
				g.PhoneType,
				g.PhoneNumber,
				g.Email,
			}
			if !g.Matched {
				row = append(row,
					g.PayerAddress1,
					g.PayerAddress2,
					g.PayerCity,
					g.PayerState,
					g.PayerZip,
					g.PayerPhoneNumber,
					g.PayerEmail,
				)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		logging.FromContext(ctx).Info().
			Str("report", path).
			Int("rows", len(gifts)).
			Msg("Wrote data services report")
		return nil
	})
}

// writeCSV streams rows to a freshly created file. A failure mid-stream can
// leave a partial file behind; the run reports the error and callers must
// regenerate rather than trust partial output.
func writeCSV(_ context.Context, path string, fill func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	w := csv.NewWriter(f)
	if err := fill(w); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}
