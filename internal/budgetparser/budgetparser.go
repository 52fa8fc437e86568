// Package budgetparser reads budget CSV files into validated transactions.
// It is deliberately fail-fast: the first bad row aborts the whole parse
// with its line number, so a file is either fully ingested or not at all.
package budgetparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"fjacquet/budget-csv/internal/classifier"
	"fjacquet/budget-csv/internal/logging"
	"fjacquet/budget-csv/internal/models"
	"fjacquet/budget-csv/internal/normalize"
	"fjacquet/budget-csv/internal/parsererror"
	"fjacquet/budget-csv/internal/textutils"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{"date", "kind", "amount", "category"}

// DefaultMaxRows bounds the number of data rows per file. The pipeline is
// whole-file and in-memory, so an unbounded input would mean unbounded
// latency.
const DefaultMaxRows = 100000

// Parser converts delimited text into transactions.
type Parser struct {
	classifier *classifier.Classifier
	logger     logging.Logger
	delimiter  rune // 0 means sniff per input
	maxRows    int
}

// New creates a Parser using the given classifier for group resolution.
func New(c *classifier.Classifier, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		classifier: c,
		logger:     logger,
		maxRows:    DefaultMaxRows,
	}
}

// SetDelimiter pins the field delimiter instead of sniffing it per input.
func (p *Parser) SetDelimiter(delimiter rune) {
	p.delimiter = delimiter
}

// SetMaxRows overrides the data-row ceiling. Values below one restore the
// default.
func (p *Parser) SetMaxRows(maxRows int) {
	if maxRows < 1 {
		maxRows = DefaultMaxRows
	}
	p.maxRows = maxRows
}

// ParseFile reads and parses a budget CSV file.
func (p *Parser) ParseFile(filePath string) ([]models.Transaction, error) {
	p.logger.Info("Parsing budget CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	data, err := os.ReadFile(filePath)
	if err != nil {
		p.logger.WithError(err).Error("Failed to read budget CSV file")
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	return p.ParseBytes(data, "")
}

// ParseBytes parses raw uploaded bytes with an optionally declared character
// set. This is the contract the transport layer uses: bytes in, either a
// full transaction set or a single structured error out.
func (p *Parser) ParseBytes(data []byte, declaredCharset string) ([]models.Transaction, error) {
	text, err := textutils.DecodeText(data, declaredCharset)
	if err != nil {
		return nil, fmt.Errorf("error decoding input: %w", err)
	}
	return p.Parse(strings.NewReader(text))
}

// Parse reads delimited text with a header row and returns the transactions
// in file order. It fails with MissingHeaderError, MissingColumnsError or a
// line-numbered RowError; on any failure no transactions are returned.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	delimiter := p.delimiter
	if delimiter == 0 {
		delimiter = sniffDelimiter(content)
	}
	p.logger.Debug("reading rows",
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // rows may omit trailing optional fields
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &parsererror.MissingHeaderError{}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	line := 1 // header is line 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &parsererror.RowError{Line: line, Err: err}
		}
		if len(transactions) >= p.maxRows {
			return nil, fmt.Errorf("input exceeds row limit of %d", p.maxRows)
		}

		tx, err := p.convertRow(record, columns)
		if err != nil {
			p.logger.WithError(err).Error("Row failed validation, aborting parse",
				logging.Field{Key: logging.FieldLine, Value: line})
			return nil, &parsererror.RowError{Line: line, Err: err}
		}

		transactions = append(transactions, tx)
	}

	p.logger.Info("Successfully parsed budget CSV",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// convertRow turns one data record into a Transaction, normalizing every
// field. The caller adds the line number on failure.
func (p *Parser) convertRow(record []string, columns map[string]int) (models.Transaction, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	kind, err := normalize.Kind(cell("kind"))
	if err != nil {
		return models.Transaction{}, err
	}

	amount, err := normalize.Amount(cell("amount"))
	if err != nil {
		return models.Transaction{}, err
	}

	category := strings.TrimSpace(cell("category"))
	if category == "" {
		return models.Transaction{}, &parsererror.EmptyValueError{Field: "category"}
	}

	date, err := normalize.Date(cell("date"))
	if err != nil {
		return models.Transaction{}, err
	}

	group := p.classifier.Classify(category, cell("group"))

	return models.Transaction{
		Date:     date,
		Kind:     kind,
		Amount:   amount,
		Category: category,
		Group:    group,
		Note:     strings.TrimSpace(cell("note")),
	}, nil
}

// indexColumns maps header names to their positions and verifies all
// required columns are present, reporting every missing one at once.
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &parsererror.MissingColumnsError{Columns: missing}
	}

	return columns, nil
}

// sniffDelimiter picks between comma and semicolon by counting occurrences
// in the first few KB. Semicolon-delimited exports are the norm in
// German-speaking regions, comma everywhere else.
func sniffDelimiter(content []byte) rune {
	sample := content
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	if bytes.Count(sample, []byte(";")) > bytes.Count(sample, []byte(",")) {
		return ';'
	}
	return ','
}
