// The server command exposes the engine over HTTP: records are posted one at
// a time and the account snapshot is readable at any point.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paystream/payments-engine/internal/accounts"
	"github.com/paystream/payments-engine/internal/config"
	"github.com/paystream/payments-engine/internal/engine"
	"github.com/paystream/payments-engine/internal/events/kafka"
	"github.com/paystream/payments-engine/internal/interfaces"
	"github.com/paystream/payments-engine/internal/ledger"
	"github.com/paystream/payments-engine/internal/logger"
	"github.com/paystream/payments-engine/internal/models"
	"github.com/paystream/payments-engine/internal/models/events"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	proc := engine.NewProcessor(accounts.NewStore(), ledger.New())

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka publisher enabled")
	}

	// The processor applies records strictly one at a time.
	var mu sync.Mutex

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Type   string          `json:"type"`
			Client uint16          `json:"client"`
			Tx     uint32          `json:"tx"`
			Amount decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		op, err := models.ParseOperation(req.Type)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec := models.Record{
			Op:       op,
			ClientID: req.Client,
			TxID:     req.Tx,
			Amount:   req.Amount,
		}

		// The entry amount is read under the same lock so a concurrent
		// request cannot slip in between apply and publish.
		mu.Lock()
		err = proc.Apply(rec)
		var amount decimal.Decimal
		if err == nil {
			if entry, ok := proc.Entry(rec.TxID); ok {
				amount = entry.Amount
			}
		}
		mu.Unlock()
		if err != nil {
			log.Warn().Err(err).Uint16("client", rec.ClientID).Uint32("tx", rec.TxID).Msg("record rejected")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		publish(r.Context(), publisher, rec, amount, log)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"applied"}`))
	})

	http.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		mu.Lock()
		snapshot := proc.Snapshot()
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	})

	http.HandleFunc("/accounts/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		clientParam := r.URL.Query().Get("client")
		if clientParam == "" {
			http.Error(w, "client is a mandatory field", http.StatusBadRequest)
			return
		}
		clientID, err := strconv.ParseUint(clientParam, 10, 16)
		if err != nil {
			http.Error(w, "client must be an unsigned integer", http.StatusBadRequest)
			return
		}

		mu.Lock()
		view, ok := proc.Account(uint16(clientID))
		mu.Unlock()
		if !ok {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(view)
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("starting server")
	if err := http.ListenAndServe(cfg.HTTPAddr, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// publish emits the post-commit event for an applied record. Deposits and
// withdrawals announce acceptance; a chargeback announces the lock it caused.
// Publishing failures are logged, never surfaced to the client.
func publish(ctx context.Context, publisher interfaces.EventPublisher, rec models.Record, amount decimal.Decimal, log zerolog.Logger) {
	if publisher == nil {
		return
	}

	key := strconv.FormatUint(uint64(rec.ClientID), 10)

	switch rec.Op {
	case models.OpDeposit, models.OpWithdrawal:
		event := events.TransactionAccepted{
			EventID:    uuid.New().String(),
			Type:       string(rec.Op),
			ClientID:   rec.ClientID,
			TxID:       rec.TxID,
			Amount:     amount,
			OccurredAt: time.Now(),
		}
		if err := publisher.Publish(ctx, key, event); err != nil {
			log.Error().Err(err).Uint32("tx", rec.TxID).Msg("publish transaction.accepted failed")
		}
	case models.OpChargeback:
		event := events.AccountLocked{
			EventID:    uuid.New().String(),
			ClientID:   rec.ClientID,
			TxID:       rec.TxID,
			Amount:     amount,
			OccurredAt: time.Now(),
		}
		if err := publisher.Publish(ctx, key, event); err != nil {
			log.Error().Err(err).Uint32("tx", rec.TxID).Msg("publish account.locked failed")
		}
	}
}
