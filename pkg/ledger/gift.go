package ledger

// ExportView is the left outer join of an ExportRecord with the CRM
// designations relation on transaction id. It carries every ExportRecord field
// plus the matched designation's banner id, amount, and fund code, which stay
// empty when no designation line matched. Read-only once built.
type ExportView struct {
	ExportRecord

	// From the matched DesignationRecord, empty if unmatched.
	BannerID          string
	DesignationAmount string
	DesgCode          string
}

// MergedGift is the left outer join of a PaymentRecord with an ExportView on
// the shared transaction identifier (the processor's transaction id against
// the CRM's customer transaction number). Payment-side contact fields are
// carried under Payer names and emitted as c_* columns; CRM-side fields are
// unprefixed and empty when the payment matched no export row.
//
// A MergedGift always has a non-empty SettleDate; unsettled payment lines are
// filtered out at join time. The derivation rules mutate it field by field,
// after which it is read-only through ordering and emission.
type MergedGift struct {
	// Payment side, always present.
	TransactionID   string
	SettleDate      string
	UserID          string
	CardDescription string // remapped to a payment-method code by derivation
	GiftDescription string

	PayerFirstName   string
	PayerLastName    string
	DonorID          string
	PayerAddress1    string
	PayerAddress2    string
	PayerCity        string
	PayerState       string
	PayerZip         string
	PayerPhoneNumber string
	PayerEmail       string

	GiftDesignation  string
	GiftDesignation2 string
	Comments         string
	MemInHonor       string
	NextOfKin        string
	PledgeNumber     string

	TotalGiftAmount       string
	GiftAmount            string
	GiftAmount2           string
	PayerSolicitationCode string
	TranType              string
	BatchNum              string

	// CRM side, empty when the payment matched no export row.
	FirstName   string
	LastName    string
	BannerID    string // resolved to DonorID by derivation when empty
	Address1    string
	Address2    string
	City        string
	State       string
	Zip         string
	PhoneType   string
	Area        string
	PhoneNumber string
	Email       string

	DesignationAmount string
	DesgCode          string
	OtherDesignation  string
	SolicitationCode  string

	TransID     string
	TransNumber string

	Anonymous    string
	GiftMatching string

	TributeType                string
	TributeOccasion            string
	TributeNotificationName    string
	TributeNotificationAddress string
	TributeComments            string

	// Derived fields.
	MatchReceived string // "Y" when GiftMatching is non-empty

	// Matched records whether an ExportView row joined. The data-services
	// report keys its extra payer-contact columns off this.
	Matched bool
}

// NewMergedGift joins a settled payment with its matched export view.
// Pass a nil view for a payment whose transaction id matched no CRM row.
func NewMergedGift(p PaymentRecord, v *ExportView) *MergedGift {
	g := &MergedGift{
		TransactionID:   p.TransactionID,
		SettleDate:      p.SettleDate,
		UserID:          p.UserID,
		CardDescription: p.CardDescription,
		GiftDescription: p.GiftDescription,

		PayerFirstName:   p.FirstName,
		PayerLastName:    p.LastName,
		DonorID:          p.DonorID,
		PayerAddress1:    p.Address1,
		PayerAddress2:    p.Address2,
		PayerCity:        p.City,
		PayerState:       p.State,
		PayerZip:         p.Zip,
		PayerPhoneNumber: p.PhoneNumber,
		PayerEmail:       p.Email,

		GiftDesignation:  p.GiftDesignation,
		GiftDesignation2: p.GiftDesignation2,
		Comments:         p.Comments,
		MemInHonor:       p.MemInHonor,
		NextOfKin:        p.NextOfKin,
		PledgeNumber:     p.PledgeNumber,

		TotalGiftAmount:       p.TotalGiftAmount,
		GiftAmount:            p.GiftAmount,
		GiftAmount2:           p.GiftAmount2,
		PayerSolicitationCode: p.SolicitationCode,
		TranType:              p.TranType,
		BatchNum:              p.BatchNum,
	}

	if v == nil {
		return g
	}

	g.Matched = true
	g.FirstName = v.ExportRecord.FirstName
	g.LastName = v.ExportRecord.LastName
	g.BannerID = v.BannerID
	g.Address1 = v.Address1
	g.Address2 = v.Address2
	g.City = v.City
	g.State = v.State
	g.Zip = v.Zip
	g.PhoneType = v.PhoneType
	g.Area = v.Area
	g.PhoneNumber = v.PhoneNumber
	g.Email = v.Email

	g.DesignationAmount = v.DesignationAmount
	g.DesgCode = v.DesgCode
	g.OtherDesignation = v.OtherDesignation
	g.SolicitationCode = v.SolicitationCode

	g.TransID = v.TransactionID
	g.TransNumber = v.TransNumber

	g.Anonymous = v.Anonymous
	g.GiftMatching = v.GiftMatching

	g.TributeType = v.TributeType
	g.TributeOccasion = v.TributeOccasion
	g.TributeNotificationName = v.TributeNotificationName
	g.TributeNotificationAddress = v.TributeNotificationAddress
	g.TributeComments = v.TributeComments

	return g
}

// Split synthesizes the second ledger line for a payment that carries a
// second designation/amount pair. It is a shallow copy of the receiver with
// only the designation amount and fund code replaced, so it inherits every
// derivation already applied. The split line is emitted in addition to the
// original, never instead of it.
func (g *MergedGift) Split() *MergedGift {
	s := *g
	s.DesignationAmount = g.GiftAmount2
	s.DesgCode = g.GiftDesignation2
	return &s
}

// HasSplit reports whether the payment carries a second itemized amount and
// therefore fans out into two ledger lines.
func (g *MergedGift) HasSplit() bool {
	return g.GiftAmount2 != ""
}
