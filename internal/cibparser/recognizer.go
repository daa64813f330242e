// Package cibparser turns the text of CIB bank statement PDFs into
// structured transaction records. Statement pages mix primary
// transaction rows with continuation lines (IBAN, internal account
// number, comment, card metadata) and page furniture; recognition is
// fixed-shape pattern matching, not NLP.
package cibparser

import (
	"regexp"
	"strings"
)

// LineKind identifies which of the fixed line shapes a normalized line
// matched.
type LineKind int

const (
	LineUnrecognized LineKind = iota
	LinePrimary
	LineIBAN
	LineAccountNumber
	LineComment
	LineCardSwipe
	LineMerchant
)

// String returns a short name for the line kind, for logging.
func (k LineKind) String() string {
	switch k {
	case LinePrimary:
		return "primary"
	case LineIBAN:
		return "iban"
	case LineAccountNumber:
		return "account_number"
	case LineComment:
		return "comment"
	case LineCardSwipe:
		return "card_swipe"
	case LineMerchant:
		return "merchant"
	default:
		return "unrecognized"
	}
}

// PrimaryFields are the raw captures of a primary transaction line.
// Amount and Balance stay unparsed here; the assembler owns the
// conversion so a malformed number degrades instead of failing.
type PrimaryFields struct {
	BookingDate string
	Description string
	Amount      string
	Balance     string
}

// CardFields are the raw captures of a card-swipe line: the four masked
// card-number groups, the 8-digit date, 6-digit time, original amount
// and ISO 4217 currency.
type CardFields struct {
	Groups   [4]string
	TxDate   string
	TxTime   string
	Amount   string
	Currency string
}

// MerchantFields are the raw captures of a merchant line.
type MerchantFields struct {
	MCC      string
	POSID    string
	City     string
	Merchant string
}

// Line is the tagged result of recognizing one normalized line. Only the
// field matching Kind is populated; Text always carries the normalized
// line itself.
type Line struct {
	Kind     LineKind
	Text     string
	Primary  *PrimaryFields
	Comment  string
	Card     *CardFields
	Merchant *MerchantFields
}

// The six line shapes, all anchored whole-line matches. Amounts use '.'
// as thousands separator and ',' as decimal separator.
var (
	primaryRe = regexp.MustCompile(
		`^(\d{4}\.\d{2}\.\d{2}\.)\s+(.+?)\s+(-?[\d.]+,\d{2})\s+(-?[\d.]+,\d{2})$`)
	ibanRe    = regexp.MustCompile(`^[A-Z]{2}\d{2}\s+[\d\s]{10,30}$`)
	accountRe = regexp.MustCompile(`^\d{8}-\d{8}-\d{8}$`)
	commentRe = regexp.MustCompile(`^Közlemény:\s*(.+)$`)
	cardRe    = regexp.MustCompile(
		`^(\d{4})\s+(\d{4})\s+(\d{4})\s+(\d{4})A?(\d{8})\s+(\d{6});\s+(-?[\d.]+,\d{2})\s+([A-Z]{3})$`)
	merchantRe = regexp.MustCompile(`^(\d{4})\s+([A-Z0-9]+)\s+(.+?);\s+(.+)$`)
)

// Normalize collapses internal whitespace to single spaces, converts
// non-breaking spaces to regular ones and trims the ends.
func Normalize(line string) string {
	if line == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ReplaceAll(line, "\u00a0", " ")), " ")
}

// Recognize classifies one normalized line against the six shapes and
// returns a tagged variant with the captured sub-fields. A card-swipe
// line would also satisfy the looser merchant pattern, so the card shape
// is tried first; a line matching nothing comes back Unrecognized and is
// skipped by the assembler.
func Recognize(line string) Line {
	if m := primaryRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: LinePrimary, Text: line, Primary: &PrimaryFields{
			BookingDate: m[1],
			Description: m[2],
			Amount:      m[3],
			Balance:     m[4],
		}}
	}
	if ibanRe.MatchString(line) {
		return Line{Kind: LineIBAN, Text: line}
	}
	if accountRe.MatchString(line) {
		return Line{Kind: LineAccountNumber, Text: line}
	}
	if m := commentRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineComment, Text: line, Comment: m[1]}
	}
	if m := cardRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineCardSwipe, Text: line, Card: &CardFields{
			Groups:   [4]string{m[1], m[2], m[3], m[4]},
			TxDate:   m[5],
			TxTime:   m[6],
			Amount:   m[7],
			Currency: m[8],
		}}
	}
	if m := merchantRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineMerchant, Text: line, Merchant: &MerchantFields{
			MCC:      m[1],
			POSID:    m[2],
			City:     m[3],
			Merchant: m[4],
		}}
	}
	return Line{Kind: LineUnrecognized, Text: line}
}
