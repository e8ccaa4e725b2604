// Package ledger defines the record types that flow through the gift
// reconciliation pipeline: the three source relations loaded from the
// settlement and CRM exports, and the derived views produced by joining them.
//
// Every field is a string. The upstream systems emit free-form text and the
// reports must reproduce values byte-exact, so no numeric or date parsing
// happens anywhere in the pipeline. The empty string stands in for a missing
// column or an unmatched join.
package ledger

// DesignationRecord is one gift-designation line from the CRM designations
// export. Immutable once loaded.
type DesignationRecord struct {
	GiftID            string // "ID" - unique per designation line
	LastName          string // "Last Name"
	FirstName         string // "First Name"
	BannerID          string // "Banner_ID" - external donor id
	DateStamp         string // "Date Stamp"
	TransactionID     string // "Transaction ID" - join key to ExportRecord
	DesignationAmount string // "Designation Amount"
	DesgCode          string // "ADBDESG_DESG" - designation (fund) code
}

// ExportRecord is one constituent/contact line from the CRM export.
// Immutable once loaded.
type ExportRecord struct {
	TransactionID string // "Transaction ID" - primary key
	LastName      string // "Last Name"
	FirstName     string // "First Name"
	Address1      string // "Address_1"
	Address2      string // "Address_2"
	City          string // "City"
	State         string // "State"
	Zip           string // "Zip"
	PhoneType     string // "imod_phone_type"
	Area          string // "Area" - phone area code
	PhoneNumber   string // "Phone_Number"
	Email         string // "Primary E-mail"

	Anonymous        string // "MAG12 - Is Anonymous"
	OtherDesignation string // "MAG12 - OtherDesignation"
	SolicitationCode string // "Giving - Solicitation Type"
	GiftMatching     string // "Make a Gift - MAG12 - Gift Matching"

	TributeType                string // "MAG12 - TributeType"
	TributeFullName            string // "MAG12 - TributeFullName"
	TributeOccasion            string // "MAG12 - TributeOccasion"
	TributeNotificationName    string // "MAG12 - TributeNotificationName"
	TributeNotificationAddress string // "MAG12 - TributeNotificationAddress"
	TributeComments            string // "MAG12 - TributeComments"

	DateSubmitted string // "date_submitted"
	TransNumber   string // "Customer Trans Number" - secondary join key to payments
}

// PaymentRecord is one settled payment line from the payment-processor
// settlement export, after the banner/footer pre-pass. Immutable once loaded.
type PaymentRecord struct {
	TransactionID   string // "Transaction" - primary key, joins to ExportRecord.TransNumber
	SettleDate      string // "Settle Date" - empty means the line never settled
	UserID          string // "User ID" - operator id; the web channel uses a sentinel value
	CardDescription string // "Card Description" - card brand (VISA, MC, AMEX, DISC, ...)
	GiftDescription string // "Description"

	FirstName   string // "First Name"
	LastName    string // "Last Name"
	DonorID     string // "Donor ID"
	Address1    string // "Address1"
	Address2    string // "Address2"
	City        string // "City"
	State       string // "State/Province"
	Zip         string // "Postal code"
	PhoneNumber string // "Phone"
	Email       string // "Email Address"

	GiftDesignation  string // "Gift Designation" - primary designation code
	GiftDesignation2 string // "Gift Designation 2" - optional second designation code
	Comments         string // "Comments"
	MemInHonor       string // "Memorial In Honor Of"
	NextOfKin        string // "Next of Kin"
	PledgeNumber     string // "Pledge Number"

	TotalGiftAmount string // "Amount" - total settled amount
	GiftAmount      string // "Gift Amount" - first itemized amount
	GiftAmount2     string // "Gift Amount 2" - optional second itemized amount

	SolicitationCode string // "Solicitation Code"
	TranType         string // "Tran Type"
	BatchNum         string // "Batch Number"
}
