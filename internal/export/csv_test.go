package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
)

func TestWriteTransactionsToCSV(t *testing.T) {
	orig := decimal.RequireFromString("3200.00")
	records := []models.TransactionRecord{
		{
			BookingDate:        "2024.03.05.",
			Description:        "BOLT LIDL VASARLAS",
			Amount:             decimal.RequireFromString("-3200.00"),
			Balance:            decimal.RequireFromString("45000.00"),
			Category:           models.CategoryFood,
			CardMasked:         "541275******7890",
			CardTxDate:         "2024-03-01",
			CardTxTime:         "14:15:30",
			CardCurrency:       "HUF",
			CardOriginalAmount: &orig,
		},
		{
			BookingDate:      "2024.03.06.",
			Description:      "KIMENŐ AZONNALI UTALÁS",
			Amount:           decimal.RequireFromString("-15000.00"),
			Balance:          decimal.RequireFromString("30000.00"),
			CounterpartyIBAN: "HU42 1177 3016 1111 1018 0000 0000",
			PartnerName:      "KOVACS JANOS",
			Category:         models.CategoryTransfer,
		},
	}

	csvFile := filepath.Join(t.TempDir(), "out", "transactions.csv")
	require.NoError(t, WriteTransactionsToCSV(records, csvFile, &logging.MockLogger{}))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "booking_date,description,amount,balance"))
	assert.Contains(t, lines[1], "BOLT LIDL VASARLAS")
	assert.Contains(t, lines[1], "-3200.00")
	assert.Contains(t, lines[1], "541275******7890")
	assert.Contains(t, lines[2], "KOVACS JANOS")
	assert.Contains(t, lines[2], "HU42 1177 3016 1111 1018 0000 0000")
}

func TestWriteTransactionsToCSV_EmptyStillWritesHeader(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, WriteTransactionsToCSV(nil, csvFile, &logging.MockLogger{}))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "booking_date,"))
}

func TestToRow_CardAmountOmittedWhenAbsent(t *testing.T) {
	row := toRow(models.TransactionRecord{
		BookingDate: "2024.03.05.",
		Amount:      decimal.RequireFromString("-100.00"),
	})
	assert.Empty(t, row.CardOriginalAmount)
	assert.Equal(t, "-100.00", row.Amount)
	assert.Equal(t, "0.00", row.Balance)
}
