package sources

import (
	"context"

	"github.com/agentstation/giftledger/pkg/errors"
	"github.com/agentstation/giftledger/pkg/ledger"
	"github.com/agentstation/giftledger/pkg/logging"
)

// LoadExports parses the CRM contact export.
func LoadExports(ctx context.Context, path string) ([]ledger.ExportRecord, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, errors.WrapLoad("exports", path, err)
	}

	records := make([]ledger.ExportRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, ledger.ExportRecord{
			TransactionID: t.field(row, "Transaction ID"),
			LastName:      t.field(row, "Last Name"),
			FirstName:     t.field(row, "First Name"),
			Address1:      t.field(row, "Address_1"),
			Address2:      t.field(row, "Address_2"),
			City:          t.field(row, "City"),
			State:         t.field(row, "State"),
			Zip:           t.field(row, "Zip"),
			PhoneType:     t.field(row, "imod_phone_type"),
			Area:          t.field(row, "Area"),
			PhoneNumber:   t.field(row, "Phone_Number"),
			Email:         t.field(row, "Primary E-mail"),

			Anonymous:        t.field(row, "MAG12 - Is Anonymous"),
			OtherDesignation: t.field(row, "MAG12 - OtherDesignation"),
			SolicitationCode: t.field(row, "Giving - Solicitation Type"),
			GiftMatching:     t.field(row, "Make a Gift - MAG12 - Gift Matching"),

			TributeType:                t.field(row, "MAG12 - TributeType"),
			TributeFullName:            t.field(row, "MAG12 - TributeFullName"),
			TributeOccasion:            t.field(row, "MAG12 - TributeOccasion"),
			TributeNotificationName:    t.field(row, "MAG12 - TributeNotificationName"),
			TributeNotificationAddress: t.field(row, "MAG12 - TributeNotificationAddress"),
			TributeComments:            t.field(row, "MAG12 - TributeComments"),

			DateSubmitted: t.field(row, "date_submitted"),
			TransNumber:   t.field(row, "Customer Trans Number"),
		})
	}

	logging.FromContext(ctx).Info().
		Str("source", "exports").
		Str("path", path).
		Int("rows", len(records)).
		Msg("Loaded CRM contact export")

	return records, nil
}
