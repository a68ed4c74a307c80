package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Operation
		expectError bool
	}{
		{
			name:     "parse deposit",
			input:    "deposit",
			expected: OpDeposit,
		},
		{
			name:     "parse withdrawal",
			input:    "withdrawal",
			expected: OpWithdrawal,
		},
		{
			name:     "parse dispute",
			input:    "dispute",
			expected: OpDispute,
		},
		{
			name:     "parse resolve",
			input:    "resolve",
			expected: OpResolve,
		},
		{
			name:     "parse chargeback",
			input:    "chargeback",
			expected: OpChargeback,
		},
		{
			name:     "parse uppercase",
			input:    "DEPOSIT",
			expected: OpDeposit,
		},
		{
			name:     "parse mixed case",
			input:    "ChArGeBaCk",
			expected: OpChargeback,
		},
		{
			name:     "parse surrounding whitespace",
			input:    "  withdrawal  ",
			expected: OpWithdrawal,
		},
		{
			name:        "parse unknown operation",
			input:       "transfer",
			expectError: true,
		},
		{
			name:        "parse empty string",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := ParseOperation(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestOperationHasAmount(t *testing.T) {
	assert.True(t, OpDeposit.HasAmount())
	assert.True(t, OpWithdrawal.HasAmount())
	assert.False(t, OpDispute.HasAmount())
	assert.False(t, OpResolve.HasAmount())
	assert.False(t, OpChargeback.HasAmount())
}
