package cibparser

import (
	"os"
	"path/filepath"
	"strings"

	"pigapp/cib-statement/internal/categorizer"
	"pigapp/cib-statement/internal/fileutils"
	"pigapp/cib-statement/internal/logging"
	"pigapp/cib-statement/internal/models"
	"pigapp/cib-statement/internal/parsererror"
	"pigapp/cib-statement/internal/pdftext"
	"pigapp/cib-statement/internal/summary"
)

// Parser parses CIB statement PDFs into summaries. It holds no mutable
// state across parses; the categorizer's keyword table is read-only
// after construction, so one Parser can serve many files.
type Parser struct {
	extractor   pdftext.Extractor
	categorizer *categorizer.Categorizer
	aggregator  *summary.Aggregator
	logger      logging.Logger
}

// New creates a Parser. Nil arguments fall back to the production
// extractor, the default keyword table and the default logger.
func New(extractor pdftext.Extractor, cat *categorizer.Categorizer, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = pdftext.NewLibraryExtractor(logger)
	}
	if cat == nil {
		cat = categorizer.New(nil, logger)
	}
	return &Parser{
		extractor:   extractor,
		categorizer: cat,
		aggregator:  summary.NewAggregator(logger),
		logger:      logger,
	}
}

// ParsePages walks the per-page text and emits one TransactionRecord per
// recognized primary transaction line. Pages are independent; a
// continuation line never spans a page boundary.
func (p *Parser) ParsePages(pages []string) []models.TransactionRecord {
	var records []models.TransactionRecord
	for _, page := range pages {
		records = append(records, p.parsePage(page)...)
	}
	return records
}

func (p *Parser) parsePage(text string) []models.TransactionRecord {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, Recognize(Normalize(raw)))
	}

	var records []models.TransactionRecord
	for i, line := range lines {
		if line.Kind != LinePrimary {
			continue
		}
		// Bounded lookahead: the next two lines are continuation
		// candidates but stay in the stream, a later primary line is
		// still seen on its own.
		var extra1, extra2 Line
		if i+1 < len(lines) {
			extra1 = lines[i+1]
		}
		if i+2 < len(lines) {
			extra2 = lines[i+2]
		}
		records = append(records, p.assemble(line, extra1, extra2))
	}
	return records
}

// assemble populates one record from a primary line and its continuation
// candidates. The rules are evaluated independently and may overlap;
// when two rules write the same field the later one wins. That matches
// the statement layouts in the wild, which mix continuation kinds freely.
func (p *Parser) assemble(primary, extra1, extra2 Line) models.TransactionRecord {
	rec := models.TransactionRecord{
		BookingDate: primary.Primary.BookingDate,
		Description: primary.Primary.Description,
		ExtraLine1:  extra1.Text,
		ExtraLine2:  extra2.Text,
	}
	if amount, ok := models.ParseAmount(primary.Primary.Amount); ok {
		rec.Amount = amount
	}
	if balance, ok := models.ParseAmount(primary.Primary.Balance); ok {
		rec.Balance = balance
	}

	// Internal account number: a match on the second line overwrites a
	// match on the first.
	if extra1.Kind == LineAccountNumber {
		rec.AccountNumber = extra1.Text
	}
	if extra2.Kind == LineAccountNumber {
		rec.AccountNumber = extra2.Text
	}

	// Comment: extra2 wins over extra1.
	if extra1.Kind == LineComment {
		rec.Comment = extra1.Comment
	}
	if extra2.Kind == LineComment {
		rec.Comment = extra2.Comment
	}

	// Counterparty: an IBAN on the first continuation line claims the
	// second line as the partner name, meaningful or not. Otherwise a
	// found account number makes the non-account line the other party.
	if extra1.Kind == LineIBAN {
		rec.CounterpartyIBAN = extra1.Text
		rec.PartnerName = extra2.Text
	} else if rec.AccountNumber != "" {
		if extra1.Kind == LineAccountNumber {
			rec.OtherPartyName = extra2.Text
		}
		if extra2.Kind == LineAccountNumber {
			rec.OtherPartyName = extra1.Text
		}
	}

	if extra1.Kind == LineCardSwipe {
		card := extra1.Card
		rec.CardBIN = card.Groups[0] + card.Groups[1][:2]
		rec.CardLast4 = card.Groups[3]
		rec.CardMasked = rec.CardBIN + "******" + rec.CardLast4
		rec.CardTxDate = card.TxDate[:4] + "-" + card.TxDate[4:6] + "-" + card.TxDate[6:]
		rec.CardTxTime = card.TxTime[:2] + ":" + card.TxTime[2:4] + ":" + card.TxTime[4:]
		if amount, ok := models.ParseAmount(card.Amount); ok {
			rec.CardOriginalAmount = &amount
		}
		rec.CardCurrency = card.Currency

		if extra2.Kind == LineMerchant {
			m := extra2.Merchant
			rec.MerchantCategoryCode = m.MCC
			rec.POSID = m.POSID
			rec.CardCity = m.City
			rec.CardMerchant = m.Merchant
		}
	}

	rec.Category = p.categorizer.Categorize(rec.Description, extra1.Text, extra2.Text)
	return rec
}

// ParseFile parses a single statement PDF into its summary.
func (p *Parser) ParseFile(path string) (models.StatementSummary, error) {
	p.logger.Info("Parsing statement PDF",
		logging.Field{Key: "file", Value: path})

	pages, err := p.extractor.ExtractPages(path)
	if err != nil {
		return models.StatementSummary{}, &parsererror.ExtractionError{FilePath: path, Err: err}
	}

	records := p.ParsePages(pages)
	p.logger.Info("Extracted transactions from statement",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "pages", Value: len(pages)},
		logging.Field{Key: "count", Value: len(records)})

	return p.aggregator.Summarize(records), nil
}

// ParsePath parses a single PDF or every PDF in a directory and returns
// the summaries keyed by file base name without extension. A path that
// is neither a PDF nor a directory, and a directory without PDFs, fail
// with an InputError before any file is parsed.
func (p *Parser) ParsePath(path string) (map[string]models.StatementSummary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &parsererror.InputError{Path: path, Reason: "path does not exist"}
	}

	var pdfFiles []string
	if info.IsDir() {
		pdfFiles, err = fileutils.ListPDFs(path)
		if err != nil {
			return nil, &parsererror.InputError{Path: path, Reason: err.Error()}
		}
	} else if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		pdfFiles = []string{path}
	} else {
		return nil, &parsererror.InputError{Path: path, Reason: "not a PDF file or a directory"}
	}

	if len(pdfFiles) == 0 {
		return nil, &parsererror.InputError{Path: path, Reason: "no PDF files found"}
	}

	result := make(map[string]models.StatementSummary, len(pdfFiles))
	for _, pdfFile := range pdfFiles {
		base := strings.TrimSuffix(filepath.Base(pdfFile), filepath.Ext(pdfFile))
		s, err := p.ParseFile(pdfFile)
		if err != nil {
			return nil, err
		}
		result[base] = s
	}
	return result, nil
}
