package ledger

import (
	"testing"

	"github.com/paystream/payments-engine/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(txID uint32, clientID uint16) models.LedgerEntry {
	return models.LedgerEntry{
		TxID:     txID,
		ClientID: clientID,
		Amount:   decimal.NewFromInt(1),
		Kind:     models.KindDeposit,
		Status:   models.StatusNormal,
	}
}

func TestInsertIfAbsent(t *testing.T) {
	led := New()

	require.NoError(t, led.InsertIfAbsent(entry(1, 10)))
	assert.Equal(t, 1, led.Len())

	// Reusing the id is rejected and the original entry is preserved.
	dup := entry(1, 99)
	dup.Amount = decimal.NewFromInt(500)
	err := led.InsertIfAbsent(dup)
	require.ErrorIs(t, err, ErrDuplicateID)

	got, ok := led.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint16(10), got.ClientID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(1)))
}

func TestGetMissing(t *testing.T) {
	led := New()

	_, ok := led.Get(404)
	assert.False(t, ok)
}

func TestGetReturnsCopy(t *testing.T) {
	led := New()
	require.NoError(t, led.InsertIfAbsent(entry(1, 10)))

	got, ok := led.Get(1)
	require.True(t, ok)
	got.Status = models.StatusChargedBack

	again, _ := led.Get(1)
	assert.Equal(t, models.StatusNormal, again.Status)
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []models.EntryStatus
		wantErr error
	}{
		{
			name: "normal to disputed",
			path: []models.EntryStatus{models.StatusDisputed},
		},
		{
			name: "dispute then resolve",
			path: []models.EntryStatus{models.StatusDisputed, models.StatusNormal},
		},
		{
			name: "dispute then chargeback",
			path: []models.EntryStatus{models.StatusDisputed, models.StatusChargedBack},
		},
		{
			name:    "resolve without dispute",
			path:    []models.EntryStatus{models.StatusNormal},
			wantErr: ErrBadTransition,
		},
		{
			name:    "chargeback without dispute",
			path:    []models.EntryStatus{models.StatusChargedBack},
			wantErr: ErrBadTransition,
		},
		{
			name: "double dispute",
			path: []models.EntryStatus{models.StatusDisputed, models.StatusDisputed},

			wantErr: ErrBadTransition,
		},
		{
			name: "chargeback is terminal",
			path: []models.EntryStatus{
				models.StatusDisputed,
				models.StatusChargedBack,
				models.StatusDisputed,
			},
			wantErr: ErrBadTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			led := New()
			require.NoError(t, led.InsertIfAbsent(entry(1, 10)))

			var err error
			for _, status := range tt.path {
				err = led.Transition(1, status)
				if err != nil {
					break
				}
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransitionUnknownTx(t *testing.T) {
	led := New()

	err := led.Transition(7, models.StatusDisputed)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEntriesSortedByTx(t *testing.T) {
	led := New()
	require.NoError(t, led.InsertIfAbsent(entry(3, 1)))
	require.NoError(t, led.InsertIfAbsent(entry(1, 1)))
	require.NoError(t, led.InsertIfAbsent(entry(2, 2)))

	entries := led.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, uint32(1), entries[0].TxID)
	assert.Equal(t, uint32(2), entries[1].TxID)
	assert.Equal(t, uint32(3), entries[2].TxID)
}
