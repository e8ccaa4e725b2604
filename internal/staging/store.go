// Package staging holds the three normalized source relations and implements
// the two equality joins of the reconciliation pipeline. The original tooling
// staged these relations in an embedded SQL engine purely as a join
// convenience; here the joins are explicit typed hash joins so the semantics —
// left outer, exact string key equality, no deduplication — are a contract
// instead of a query string.
package staging

import (
	"github.com/agentstation/giftledger/pkg/ledger"
)

// Store stages the three source relations for joining. It is filled once by
// the loaders and read by the two join operations; nothing mutates it after
// that. Single-threaded by design: the pipeline is a one-shot batch run.
type Store struct {
	designations []ledger.DesignationRecord
	exports      []ledger.ExportRecord
	payments     []ledger.PaymentRecord
}

// New creates an empty staging store.
func New() *Store {
	return &Store{}
}

// AddDesignations stages CRM designation records.
func (s *Store) AddDesignations(records ...ledger.DesignationRecord) {
	s.designations = append(s.designations, records...)
}

// AddExports stages CRM contact export records.
func (s *Store) AddExports(records ...ledger.ExportRecord) {
	s.exports = append(s.exports, records...)
}

// AddPayments stages settlement payment records.
func (s *Store) AddPayments(records ...ledger.PaymentRecord) {
	s.payments = append(s.payments, records...)
}

// ExportViews joins the contact export relation with the designations relation
// on transaction id: a left outer join, so every export row appears at least
// once, with empty designation fields when nothing matched. An export row
// whose transaction id matches several designation lines fans out into one
// view per match; duplicates are upstream data quality, not ours to repair.
//
// Key comparison is exact string equality. The two upstream systems disagree
// on identifier formatting often enough that any normalization here would
// silently change which gifts reconcile.
func (s *Store) ExportViews() []ledger.ExportView {
	byTransaction := make(map[string][]*ledger.DesignationRecord, len(s.designations))
	for i := range s.designations {
		d := &s.designations[i]
		byTransaction[d.TransactionID] = append(byTransaction[d.TransactionID], d)
	}

	views := make([]ledger.ExportView, 0, len(s.exports))
	for _, e := range s.exports {
		matches := byTransaction[e.TransactionID]
		if len(matches) == 0 {
			views = append(views, ledger.ExportView{ExportRecord: e})
			continue
		}
		for _, d := range matches {
			views = append(views, ledger.ExportView{
				ExportRecord:      e,
				BannerID:          d.BannerID,
				DesignationAmount: d.DesignationAmount,
				DesgCode:          d.DesgCode,
			})
		}
	}
	return views
}

// MergedGifts joins the payment relation with the export views: the
// processor's transaction id against the CRM's customer transaction number.
// Left outer again — a payment with no CRM match still produces exactly one
// gift, with all CRM-side fields empty; a payment matching several views (a
// duplicate-transaction-id condition in the CRM export) produces one gift per
// match, deliberately undeduplicated.
//
// Payment lines without a settle date never settled and are filtered out
// here; every MergedGift therefore has a non-empty SettleDate.
func (s *Store) MergedGifts(views []ledger.ExportView) []*ledger.MergedGift {
	byTransNumber := make(map[string][]*ledger.ExportView, len(views))
	for i := range views {
		v := &views[i]
		byTransNumber[v.TransNumber] = append(byTransNumber[v.TransNumber], v)
	}

	gifts := make([]*ledger.MergedGift, 0, len(s.payments))
	for _, p := range s.payments {
		if p.SettleDate == "" {
			continue
		}
		matches := byTransNumber[p.TransactionID]
		if len(matches) == 0 {
			gifts = append(gifts, ledger.NewMergedGift(p, nil))
			continue
		}
		for _, v := range matches {
			gifts = append(gifts, ledger.NewMergedGift(p, v))
		}
	}
	return gifts
}
