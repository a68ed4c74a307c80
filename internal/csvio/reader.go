// Package csvio reads transaction records from CSV and writes account
// snapshots back out, the engine's interchange format with the outside world.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paystream/payments-engine/internal/models"
	"github.com/shopspring/decimal"
)

// Reader streams records from CSV shaped `type, client, tx, amount`.
// Dispute-family rows may omit the amount column and fields may carry
// whitespace; an optional header row is skipped.
type Reader struct {
	csv       *csv.Reader
	sawHeader bool
}

// NewReader wraps an input stream.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // dispute rows legitimately have three fields
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// RowError marks a failure confined to a single input row. The reader stays
// usable; the caller may keep calling Next to skip past it.
type RowError struct {
	Err error
}

func (e *RowError) Error() string { return e.Err.Error() }

func (e *RowError) Unwrap() error { return e.Err }

// Next returns the next record, io.EOF at end of input, a *RowError for a bad
// row, or the underlying stream error.
func (r *Reader) Next() (models.Record, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return models.Record{}, &RowError{Err: err}
			}
			return models.Record{}, err
		}
		if !r.sawHeader {
			r.sawHeader = true
			if isHeader(row) {
				continue
			}
		}
		rec, err := parseRow(row)
		if err != nil {
			return models.Record{}, &RowError{Err: err}
		}
		return rec, nil
	}
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type")
}

func parseRow(row []string) (models.Record, error) {
	if len(row) < 3 {
		return models.Record{}, fmt.Errorf("row has %d fields, want at least 3", len(row))
	}

	op, err := models.ParseOperation(row[0])
	if err != nil {
		return models.Record{}, err
	}

	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return models.Record{}, fmt.Errorf("client id: %w", err)
	}

	tx, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return models.Record{}, fmt.Errorf("tx id: %w", err)
	}

	rec := models.Record{
		Op:       op,
		ClientID: uint16(client),
		TxID:     uint32(tx),
	}

	// A missing amount is passed through as zero so the processor can report
	// it as an invalid amount; only an unparseable value is a row error.
	if op.HasAmount() && len(row) >= 4 {
		raw := strings.TrimSpace(row[3])
		if raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return models.Record{}, fmt.Errorf("amount %q: %w", raw, err)
			}
			rec.Amount = amount
		}
	}
	return rec, nil
}
