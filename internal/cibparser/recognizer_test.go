package cibparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses runs of spaces",
			input:    "2024.03.05.    BOLT   LIDL",
			expected: "2024.03.05. BOLT LIDL",
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "  Közlemény: lakbér  ",
			expected: "Közlemény: lakbér",
		},
		{
			name:     "converts non-breaking spaces",
			input:    "HU42\u00a01177\u00a03016 1111 1018 0000 0000",
			expected: "HU42 1177 3016 1111 1018 0000 0000",
		},
		{
			name:     "tabs count as whitespace",
			input:    "12345678-12345678-12345678\t",
			expected: "12345678-12345678-12345678",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestRecognize_Primary(t *testing.T) {
	line := Recognize("2024.03.05. BOLT LIDL VASARLAS 3.200,00 45.000,00")
	require.Equal(t, LinePrimary, line.Kind)
	require.NotNil(t, line.Primary)
	assert.Equal(t, "2024.03.05.", line.Primary.BookingDate)
	assert.Equal(t, "BOLT LIDL VASARLAS", line.Primary.Description)
	assert.Equal(t, "3.200,00", line.Primary.Amount)
	assert.Equal(t, "45.000,00", line.Primary.Balance)
}

func TestRecognize_PrimaryNegativeAmount(t *testing.T) {
	line := Recognize("2024.03.06. KIMENŐ AZONNALI UTALÁS -15.000,00 30.000,00")
	require.Equal(t, LinePrimary, line.Kind)
	assert.Equal(t, "-15.000,00", line.Primary.Amount)
	assert.Equal(t, "30.000,00", line.Primary.Balance)
}

func TestRecognize_IBAN(t *testing.T) {
	line := Recognize("HU42 1177 3016 1111 1018 0000 0000")
	assert.Equal(t, LineIBAN, line.Kind)
	assert.Equal(t, "HU42 1177 3016 1111 1018 0000 0000", line.Text)
}

func TestRecognize_AccountNumber(t *testing.T) {
	line := Recognize("10700024-12345678-51100005")
	assert.Equal(t, LineAccountNumber, line.Kind)
}

func TestRecognize_Comment(t *testing.T) {
	line := Recognize("Közlemény: albérlet március")
	require.Equal(t, LineComment, line.Kind)
	assert.Equal(t, "albérlet március", line.Comment)
}

func TestRecognize_CardSwipe(t *testing.T) {
	line := Recognize("5412 7512 3456 7890A20240301 141530; 3.200,00 HUF")
	require.Equal(t, LineCardSwipe, line.Kind)
	require.NotNil(t, line.Card)
	assert.Equal(t, [4]string{"5412", "7512", "3456", "7890"}, line.Card.Groups)
	assert.Equal(t, "20240301", line.Card.TxDate)
	assert.Equal(t, "141530", line.Card.TxTime)
	assert.Equal(t, "3.200,00", line.Card.Amount)
	assert.Equal(t, "HUF", line.Card.Currency)
}

func TestRecognize_CardSwipeWithoutSeparatorLetter(t *testing.T) {
	// The 'A' between the last card group and the date is optional.
	line := Recognize("5412 7512 3456 789020240301 141530; -1.500,00 EUR")
	require.Equal(t, LineCardSwipe, line.Kind)
	assert.Equal(t, "20240301", line.Card.TxDate)
	assert.Equal(t, "-1.500,00", line.Card.Amount)
	assert.Equal(t, "EUR", line.Card.Currency)
}

func TestRecognize_Merchant(t *testing.T) {
	line := Recognize("5411 P0012345 BUDAPEST; LIDL ARUHAZ 123")
	require.Equal(t, LineMerchant, line.Kind)
	require.NotNil(t, line.Merchant)
	assert.Equal(t, "5411", line.Merchant.MCC)
	assert.Equal(t, "P0012345", line.Merchant.POSID)
	assert.Equal(t, "BUDAPEST", line.Merchant.City)
	assert.Equal(t, "LIDL ARUHAZ 123", line.Merchant.Merchant)
}

// A card-swipe line also satisfies the merchant shape, so recognition
// order matters: the card shape must win.
func TestRecognize_CardBeatsMerchant(t *testing.T) {
	line := Recognize("5412 7512 3456 7890A20240301 141530; 3.200,00 HUF")
	assert.Equal(t, LineCardSwipe, line.Kind)
	assert.Nil(t, line.Merchant)
}

func TestRecognize_Unrecognized(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"page furniture", "CIB Bank Zrt. 1. oldal"},
		{"column header", "Könyvelés dátuma Megnevezés Összeg Egyenleg"},
		{"primary without balance", "2024.03.05. BOLT LIDL 3.200,00"},
		{"lowercase iban prefix", "hu42 1177 3016 1111 1018 0000 0000"},
		{"short account number", "1234567-12345678-12345678"},
		{"empty line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Recognize(tt.input)
			assert.Equal(t, LineUnrecognized, line.Kind)
			assert.Equal(t, tt.input, line.Text)
		})
	}
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "primary", LinePrimary.String())
	assert.Equal(t, "iban", LineIBAN.String())
	assert.Equal(t, "account_number", LineAccountNumber.String())
	assert.Equal(t, "comment", LineComment.String())
	assert.Equal(t, "card_swipe", LineCardSwipe.String())
	assert.Equal(t, "merchant", LineMerchant.String())
	assert.Equal(t, "unrecognized", LineUnrecognized.String())
}
