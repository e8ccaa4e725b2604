package sources

import (
	"context"

	"github.com/agentstation/giftledger/pkg/errors"
	"github.com/agentstation/giftledger/pkg/ledger"
	"github.com/agentstation/giftledger/pkg/logging"
)

// LoadDesignations parses the CRM designations export.
func LoadDesignations(ctx context.Context, path string) ([]ledger.DesignationRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, errors.WrapLoad("designations", path, err)
	}

	records := make([]ledger.DesignationRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, ledger.DesignationRecord{
			GiftID:            t.field(row, "ID"),
			LastName:          t.field(row, "Last Name"),
			FirstName:         t.field(row, "First Name"),
			BannerID:          t.field(row, "Banner_ID"),
			DateStamp:         t.field(row, "Date Stamp"),
			TransactionID:     t.field(row, "Transaction ID"),
			DesignationAmount: t.field(row, "Designation Amount"),
			DesgCode:          t.field(row, "ADBDESG_DESG"),
		})
	}

	logging.FromContext(ctx).Info().
		Str("source", "designations").
		Str("path", path).
		Int("rows", len(records)).
		Msg("Loaded CRM designations export")

	return records, nil
}
