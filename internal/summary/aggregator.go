// Package summary computes the aggregate views over one statement's
// transaction records.
package summary

import (
	"strings"

	"github.com/shopspring/decimal"

	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
)

// Fixed CIB description phrases selecting the transfer views, matched
// case-insensitively.
const (
	outgoingTransferPhrase = "kimenő azonnali utalás"
	internalTransferPhrase = "saját számlák közti rendsz. utalás"
)

// Aggregator computes the four independent summary views of a
// statement: category totals, outgoing transfers by IBAN, daily net
// spending and the internal-transfer bucket.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{logger: logger}
}

// Summarize builds the StatementSummary for one record list. Each view
// is computed over the full list independently; records are not
// consumed or mutated.
func (a *Aggregator) Summarize(records []models.TransactionRecord) models.StatementSummary {
	s := models.StatementSummary{
		AllTransactions: records,
		OutgoingByIBAN:  make(map[string]models.IBANGroup),
		DailySpending:   make(map[string]decimal.Decimal),
		CategoryTotals:  make(map[string]decimal.Decimal),
		InternalTransfers: models.InternalTransfers{
			Total:        decimal.Zero,
			Transactions: []models.TransferDetail{},
		},
	}

	for _, rec := range records {
		s.CategoryTotals[rec.Category] = s.CategoryTotals[rec.Category].Add(rec.Amount)

		desc := strings.ToLower(rec.Description)

		if strings.Contains(desc, outgoingTransferPhrase) {
			// Records without a recognized IBAN group under "".
			group := s.OutgoingByIBAN[rec.CounterpartyIBAN]
			if group.Partner == "" && rec.PartnerName != "" {
				group.Partner = rec.PartnerName
			}
			group.TotalAmount = group.TotalAmount.Add(rec.Amount)
			group.Transactions = append(group.Transactions, transferDetail(rec))
			s.OutgoingByIBAN[rec.CounterpartyIBAN] = group
		}

		if rec.Amount.IsNegative() {
			day := NormalizeDate(rec.BookingDate)
			s.DailySpending[day] = s.DailySpending[day].Add(rec.Amount)
		}

		if strings.Contains(desc, internalTransferPhrase) {
			s.InternalTransfers.Total = s.InternalTransfers.Total.Add(rec.Amount)
			s.InternalTransfers.Transactions = append(s.InternalTransfers.Transactions, transferDetail(rec))
		}
	}

	a.logger.Debug("Computed statement summary",
		logging.Field{Key: "transactions", Value: len(records)},
		logging.Field{Key: "categories", Value: len(s.CategoryTotals)},
		logging.Field{Key: "outgoing_ibans", Value: len(s.OutgoingByIBAN)},
		logging.Field{Key: "internal_transfers", Value: len(s.InternalTransfers.Transactions)})

	return s
}

// NormalizeDate turns the statement's "YYYY.MM.DD." booking date into
// "YYYY-MM-DD".
func NormalizeDate(bookingDate string) string {
	return strings.TrimRight(strings.ReplaceAll(bookingDate, ".", "-"), "-")
}

func transferDetail(rec models.TransactionRecord) models.TransferDetail {
	return models.TransferDetail{
		Date:        rec.BookingDate,
		Amount:      rec.Amount,
		Balance:     rec.Balance,
		Description: rec.Description,
	}
}
