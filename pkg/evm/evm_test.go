// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasScheme(t *testing.T) {
	tests := []struct {
		rpcURL    string
		hasScheme bool
	}{
		{"http://127.0.0.1:8545", true},
		{"https://rpc.example.com", true},
		{"ws://127.0.0.1:8546", true},
		{"wss://rpc.example.com/ws", true},
		{"127.0.0.1:8545", false},
		{"rpc.example.com", false},
	}
	for _, tt := range tests {
		hasScheme, err := HasScheme(tt.rpcURL)
		require.NoError(t, err, tt.rpcURL)
		require.Equal(t, tt.hasScheme, hasScheme, tt.rpcURL)
	}
}

func TestTransactionError(t *testing.T) {
	cause := errors.New("boom")
	err := TransactionError(nil, cause, "failure deploying %s", "token")
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "failure deploying token")
	require.Contains(t, err.Error(), "tx failed to be submitted")
}
