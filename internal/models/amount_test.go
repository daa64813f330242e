package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "thousands separator and decimal comma",
			input:    "1.234,56",
			expected: "1234.56",
			ok:       true,
		},
		{
			name:     "negative amount",
			input:    "-12,00",
			expected: "-12.00",
			ok:       true,
		},
		{
			name:     "large negative with thousands",
			input:    "-12.345,67",
			expected: "-12345.67",
			ok:       true,
		},
		{
			name:     "plain integer",
			input:    "45.000,00",
			expected: "45000",
			ok:       true,
		},
		{
			name:  "empty string has no value",
			input: "",
			ok:    false,
		},
		{
			name:  "malformed text has no value",
			input: "abc",
			ok:    false,
		},
		{
			name:  "double separators are malformed",
			input: "1,2,3",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				expected, err := decimal.NewFromString(tt.expected)
				require.NoError(t, err)
				assert.True(t, expected.Equal(got), "expected %s, got %s", expected, got)
			}
		})
	}
}

func TestDefaultCategoryKeywords_Order(t *testing.T) {
	table := DefaultCategoryKeywords()

	// Table order is the tie-break order, so it is part of the contract.
	labels := CategoryLabels(table)
	assert.Equal(t, []string{
		CategoryFood, CategoryTransport, CategoryShopping, CategoryServices,
		CategoryUtilities, CategoryTransfer, CategoryATM, CategorySalary,
		CategoryOther,
	}, labels)
}

func TestDefaultCategoryKeywords_OtherIsEmpty(t *testing.T) {
	table := DefaultCategoryKeywords()
	last := table[len(table)-1]
	assert.Equal(t, CategoryOther, last.Name)
	assert.Empty(t, last.Keywords)
}
