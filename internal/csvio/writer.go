package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/paystream/payments-engine/internal/models"
	"github.com/shopspring/decimal"
)

// Writer emits a final account snapshot as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSnapshot writes the header plus one row per account view, in the order
// given.
func (w *Writer) WriteSnapshot(views []models.AccountView) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, v := range views {
		row := []string{
			strconv.FormatUint(uint64(v.ClientID), 10),
			FormatAmount(v.Available),
			FormatAmount(v.Held),
			FormatAmount(v.Total),
			strconv.FormatBool(v.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}

// FormatAmount renders a decimal rounded to four fractional digits. String
// already trims trailing zeros, so 1.5000 prints as 1.5 and 2.00 as 2.
func FormatAmount(d decimal.Decimal) string {
	return d.Round(4).String()
}
