// Package models defines the data types shared between the statement
// parser, the categorizer and the summary aggregator.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionRecord is one booked statement row together with the fields
// extracted from its continuation lines. Exactly one record is produced
// per recognized primary transaction line; continuation lines only enrich
// the record they follow.
type TransactionRecord struct {
	BookingDate string          `json:"booking_date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`

	PartnerName      string `json:"partner_name"`
	CounterpartyIBAN string `json:"counterparty_iban"`
	AccountNumber    string `json:"account_number"`
	OtherPartyName   string `json:"other_party_name"`
	Comment          string `json:"comment"`

	// The two raw lines following the primary line. Kept on the record
	// because categorization scores over them as well.
	ExtraLine1 string `json:"extra_line_1"`
	ExtraLine2 string `json:"extra_line_2"`

	Category string `json:"category"`

	// Card sub-fields, all empty/nil when the transaction has no
	// card-swipe continuation line.
	CardBIN              string           `json:"card_bin"`
	CardLast4            string           `json:"card_last4"`
	CardMasked           string           `json:"card_masked"`
	CardTxDate           string           `json:"card_tx_date"`
	CardTxTime           string           `json:"card_tx_time"`
	CardOriginalAmount   *decimal.Decimal `json:"card_original_amount"`
	CardCurrency         string           `json:"card_currency"`
	MerchantCategoryCode string           `json:"merchant_category_code"`
	POSID                string           `json:"pos_id"`
	CardCity             string           `json:"card_city"`
	CardMerchant         string           `json:"card_merchant"`
}

// TransferDetail is the per-transaction entry used inside the transfer
// oriented summary views.
type TransferDetail struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
}

// IBANGroup aggregates the outgoing instant transfers sent to a single
// counterparty IBAN.
type IBANGroup struct {
	Partner      string           `json:"partner"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	Transactions []TransferDetail `json:"transactions"`
}

// InternalTransfers is the bucket of scheduled transfers between the
// customer's own accounts.
type InternalTransfers struct {
	Total        decimal.Decimal  `json:"total"`
	Transactions []TransferDetail `json:"transactions"`
}

// StatementSummary is the aggregate output for one parsed statement.
type StatementSummary struct {
	AllTransactions   []TransactionRecord        `json:"all_transactions"`
	OutgoingByIBAN    map[string]IBANGroup       `json:"outgoing_by_iban"`
	DailySpending     map[string]decimal.Decimal `json:"daily_spending"`
	InternalTransfers InternalTransfers          `json:"internal_transfers"`
	CategoryTotals    map[string]decimal.Decimal `json:"category_totals"`
}
