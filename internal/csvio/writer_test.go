package csvio

import (
	"bytes"
	"testing"

	"github.com/paystream/payments-engine/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing zeros trimmed",
			input:    "1.5000",
			expected: "1.5",
		},
		{
			name:     "integer stays bare",
			input:    "2.00",
			expected: "2",
		},
		{
			name:     "zero",
			input:    "0",
			expected: "0",
		},
		{
			name:     "rounded half away from zero",
			input:    "1.23456",
			expected: "1.2346",
		},
		{
			name:     "four places preserved",
			input:    "0.0001",
			expected: "0.0001",
		},
		{
			name:     "negative value",
			input:    "-3.10",
			expected: "-3.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatAmount(d))
		})
	}
}

func TestWriteSnapshot(t *testing.T) {
	views := []models.AccountView{
		{
			ClientID:  1,
			Available: decimal.RequireFromString("1.5"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("1.5"),
		},
		{
			ClientID:  2,
			Available: decimal.Zero,
			Held:      decimal.Zero,
			Total:     decimal.Zero,
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteSnapshot(views))

	expected := "client,available,held,total,locked\n" +
		"1,1.5,0,1.5,false\n" +
		"2,0,0,0,true\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteSnapshotEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteSnapshot(nil))
	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}
