package csvio

import (
	"errors"
	"io"

	"github.com/paystream/payments-engine/internal/engine"
	"github.com/rs/zerolog"
)

// Run feeds every record from in through the processor and writes the final
// snapshot to out. Malformed rows and rejected records are logged at warn and
// skipped; only an unreadable input stream or a failed write aborts the run.
// It returns how many records were applied and how many rejected.
func Run(proc *engine.Processor, in io.Reader, out io.Writer, log zerolog.Logger) (applied, rejected int, err error) {
	reader := NewReader(in)
	for {
		rec, readErr := reader.Next()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			var rowErr *RowError
			if !errors.As(readErr, &rowErr) {
				return applied, rejected, readErr
			}
			rejected++
			log.Warn().Err(readErr).Msg("skipping malformed row")
			continue
		}
		if applyErr := proc.Apply(rec); applyErr != nil {
			rejected++
			log.Warn().
				Err(applyErr).
				Uint16("client", rec.ClientID).
				Uint32("tx", rec.TxID).
				Msg("record rejected")
			continue
		}
		applied++
	}

	if err := NewWriter(out).WriteSnapshot(proc.Snapshot()); err != nil {
		return applied, rejected, err
	}
	return applied, rejected, nil
}
