// Package derive applies the per-gift transformation rules that turn a raw
// merged payment/CRM row into a ledger line: identifier fallbacks,
// payment-method and tribute coding, the anonymity flag, amount and fund-code
// fallback chains, phone canonicalization, and the multi-designation split.
package derive

import (
	"github.com/agentstation/giftledger/pkg/constants"
	"github.com/agentstation/giftledger/pkg/ledger"
)

// CardCode is the pair of payment-method codes a card brand maps to,
// depending on whether the gift came in through the web donation page or an
// operator terminal.
type CardCode struct {
	Standard string `yaml:"standard"`
	Web      string `yaml:"web"`
}

// Rules holds the coding tables the derivation engine applies. The zero value
// is not useful; start from Default and optionally overlay an operator-
// maintained YAML file via Load.
type Rules struct {
	// WebUserID is the operator id the processor records for web gifts.
	WebUserID string `yaml:"web_user_id"`

	// CardCodes maps a card brand from the settlement export to its ledger
	// payment-method codes. Brands not in the table pass through unchanged.
	CardCodes map[string]CardCode `yaml:"card_codes"`

	// TributeCodes maps CRM tribute-type labels to ledger tribute codes.
	// Labels not in the table pass through unchanged. Matching is
	// case-sensitive; so is the upstream data entry.
	TributeCodes map[string]string `yaml:"tribute_codes"`
}

// Default returns the built-in coding tables.
func Default() *Rules {
	return &Rules{
		WebUserID: constants.DefaultWebUserID,
		CardCodes: map[string]CardCode{
			"VISA": {Standard: "MC", Web: "WM"},
			"MC":   {Standard: "MC", Web: "WM"},
			"AMEX": {Standard: "AX", Web: "WA"},
			"DISC": {Standard: "DS", Web: "WD"},
		},
		TributeCodes: map[string]string{
			"In Memory": "MEMR",
			"In Honor":  "HONR",
		},
	}
}

// Apply runs the per-record rules, in fixed order, against one merged gift.
// Each fallback fires only when its target field is empty, which makes the
// fallback rules idempotent; the coding rules rewrite their field in place.
// The structural multi-designation split is not applied here — see Expand.
func (r *Rules) Apply(g *ledger.MergedGift) {
	// 1. Donor-id fallback: the CRM banner id wins, else the payer id.
	if g.BannerID == "" {
		g.BannerID = g.DonorID
	}

	// 2. Card brand to payment-method code, web channel coded separately.
	if cc, ok := r.CardCodes[g.CardDescription]; ok {
		if g.UserID == r.WebUserID {
			g.CardDescription = cc.Web
		} else {
			g.CardDescription = cc.Standard
		}
	}

	// 3. Matching-gift flag.
	if g.GiftMatching != "" {
		g.MatchReceived = "Y"
	}

	// 4. Tribute-type coding.
	if code, ok := r.TributeCodes[g.TributeType]; ok {
		g.TributeType = code
	}

	// 5. Anonymity. Strict equality against the literal "True": every other
	// value, including "TRUE" and empty, codes as not anonymous. The upstream
	// form emits exactly this literal; anything else is not a request for
	// anonymity.
	if g.Anonymous == "True" {
		g.Anonymous = "ANON"
	} else {
		g.Anonymous = ""
	}

	// 6. Designation-amount fallback chain: CRM designation amount (already
	// present from the join when it exists), else the first itemized payment
	// amount, else the payment total.
	if g.DesignationAmount == "" {
		if g.GiftAmount != "" {
			g.DesignationAmount = g.GiftAmount
		} else {
			g.DesignationAmount = g.TotalGiftAmount
		}
	}

	// 7. Fund-code fallback to the payment's primary designation.
	if g.DesgCode == "" {
		g.DesgCode = g.GiftDesignation
	}

	// 8. Solicitation-code fallback to the payer's code.
	if g.SolicitationCode == "" {
		g.SolicitationCode = g.PayerSolicitationCode
	}

	// 9. Phone canonicalization on both sides. The CRM splits area code and
	// number; the processor stores one field.
	g.PhoneNumber = CleanPhone(g.Area, g.PhoneNumber)
	g.PayerPhoneNumber = CleanPhone("", g.PayerPhoneNumber)
}

// ApplyAll runs Apply over every gift.
func (r *Rules) ApplyAll(gifts []*ledger.MergedGift) {
	for _, g := range gifts {
		r.Apply(g)
	}
}

// Expand performs the multi-designation split: a gift whose payment carries a
// second designation/amount pair fans out into two ledger lines. The split
// line is a copy of the already-derived original with only the amount and
// fund code replaced, and it precedes its parent in the output, so split
// pairs stay adjacent through emission.
func Expand(gifts []*ledger.MergedGift) []*ledger.MergedGift {
	out := make([]*ledger.MergedGift, 0, len(gifts))
	for _, g := range gifts {
		if g.HasSplit() {
			out = append(out, g.Split())
		}
		out = append(out, g)
	}
	return out
}
