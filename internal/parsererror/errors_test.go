package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputError_Message(t *testing.T) {
	err := &InputError{Path: "/tmp/statements", Reason: "no PDF files found"}
	assert.Equal(t, "invalid input '/tmp/statements': no PDF files found", err.Error())
}

func TestExtractionError_Unwrap(t *testing.T) {
	cause := errors.New("damaged xref table")
	err := &ExtractionError{FilePath: "broken.pdf", Err: cause}

	assert.Equal(t, "text extraction failed for 'broken.pdf': damaged xref table", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ParseError{FilePath: "a.pdf", Field: "amount", Value: "x,yz", Err: cause}

	assert.Equal(t, "a.pdf: failed to parse amount='x,yz': invalid syntax", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorTypesAreDistinguishable(t *testing.T) {
	var err error = &ExtractionError{FilePath: "a.pdf", Err: errors.New("boom")}

	var extractionErr *ExtractionError
	assert.ErrorAs(t, err, &extractionErr)

	var inputErr *InputError
	assert.False(t, errors.As(err, &inputErr))
}
