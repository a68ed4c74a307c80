// The engine command processes a CSV of transaction records and writes the
// final per-client account snapshot to stdout.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/paystream/payments-engine/internal/accounts"
	"github.com/paystream/payments-engine/internal/config"
	"github.com/paystream/payments-engine/internal/csvio"
	"github.com/paystream/payments-engine/internal/engine"
	"github.com/paystream/payments-engine/internal/interfaces"
	"github.com/paystream/payments-engine/internal/ledger"
	"github.com/paystream/payments-engine/internal/logger"
	"github.com/paystream/payments-engine/internal/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: engine <transactions.csv>")
		os.Exit(1)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open input")
	}
	defer file.Close()

	proc := engine.NewProcessor(accounts.NewStore(), ledger.New())

	applied, rejected, err := csvio.Run(proc, file, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("processing failed")
	}
	log.Info().Int("applied", applied).Int("rejected", rejected).Msg("run complete")

	if cfg.DatabaseURL == "" {
		return
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open database")
	}
	defer db.Close()

	var store interfaces.SnapshotStore = postgres.NewStore(db)
	if err := store.SaveRun(context.Background(), proc.Snapshot(), proc.Entries()); err != nil {
		log.Fatal().Err(err).Msg("cannot persist run")
	}
	log.Info().Msg("run persisted")
}
