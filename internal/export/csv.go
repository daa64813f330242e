// Package export writes parsed transaction records to the flat CSV
// format consumed by the surrounding finance tooling.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
)

// transactionRow maps one TransactionRecord to CSV columns. Amounts are
// rendered with two decimal places; card fields stay empty for
// transactions without card metadata.
type transactionRow struct {
	BookingDate          string `csv:"booking_date"`
	Description          string `csv:"description"`
	Amount               string `csv:"amount"`
	Balance              string `csv:"balance"`
	PartnerName          string `csv:"partner_name"`
	CounterpartyIBAN     string `csv:"counterparty_iban"`
	AccountNumber        string `csv:"account_number"`
	OtherPartyName       string `csv:"other_party_name"`
	Comment              string `csv:"comment"`
	Category             string `csv:"category"`
	CardMasked           string `csv:"card_masked"`
	CardTxDate           string `csv:"card_tx_date"`
	CardTxTime           string `csv:"card_tx_time"`
	CardOriginalAmount   string `csv:"card_original_amount"`
	CardCurrency         string `csv:"card_currency"`
	MerchantCategoryCode string `csv:"merchant_category_code"`
	POSID                string `csv:"pos_id"`
	CardCity             string `csv:"card_city"`
	CardMerchant         string `csv:"card_merchant"`
}

// WriteTransactionsToCSV writes records to csvFile, creating parent
// directories as needed. An empty record list still produces a file
// with headers.
func WriteTransactionsToCSV(records []models.TransactionRecord, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.Info("Writing transactions to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(records)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes to a user-provided output path
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close CSV file",
				logging.Field{Key: "file", Value: csvFile})
		}
	}()

	rows := make([]transactionRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toRow(rec))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

func toRow(rec models.TransactionRecord) transactionRow {
	row := transactionRow{
		BookingDate:          rec.BookingDate,
		Description:          rec.Description,
		Amount:               rec.Amount.StringFixed(2),
		Balance:              rec.Balance.StringFixed(2),
		PartnerName:          rec.PartnerName,
		CounterpartyIBAN:     rec.CounterpartyIBAN,
		AccountNumber:        rec.AccountNumber,
		OtherPartyName:       rec.OtherPartyName,
		Comment:              rec.Comment,
		Category:             rec.Category,
		CardMasked:           rec.CardMasked,
		CardTxDate:           rec.CardTxDate,
		CardTxTime:           rec.CardTxTime,
		CardCurrency:         rec.CardCurrency,
		MerchantCategoryCode: rec.MerchantCategoryCode,
		POSID:                rec.POSID,
		CardCity:             rec.CardCity,
		CardMerchant:         rec.CardMerchant,
	}
	if rec.CardOriginalAmount != nil {
		row.CardOriginalAmount = rec.CardOriginalAmount.StringFixed(2)
	}
	return row
}
