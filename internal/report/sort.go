package report

import (
	"slices"
	"strings"

	"github.com/agentstation/giftledger/pkg/ledger"
)

// Sort orders gifts in place by the ledger's composite key: resolved donor id,
// settle date, payer last name, payer first name. Comparison is lexical —
// donor ids and dates sort as text, which is what the downstream gift-entry
// workflow expects. The sort is stable so that join fan-out rows keep their
// source order within equal keys.
//
// Run after the donor-id fallback has resolved BannerID; none of the other
// derivation rules touch a key field.
func Sort(gifts []*ledger.MergedGift) {
	slices.SortStableFunc(gifts, func(a, b *ledger.MergedGift) int {
		if c := strings.Compare(a.BannerID, b.BannerID); c != 0 {
			return c
		}
		if c := strings.Compare(a.SettleDate, b.SettleDate); c != 0 {
			return c
		}
		if c := strings.Compare(a.PayerLastName, b.PayerLastName); c != 0 {
			return c
		}
		return strings.Compare(a.PayerFirstName, b.PayerFirstName)
	})
}
