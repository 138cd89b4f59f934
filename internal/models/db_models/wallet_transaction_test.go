package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxnStatusTerminal(t *testing.T) {
	cases := []struct {
		status   TxnStatus
		terminal bool
	}{
		{TxnStatusPending, false},
		{TxnStatusApproved, true},
		{TxnStatusRejected, true},
		{TxnStatusCompleted, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.terminal, tc.status.Terminal(), "status=%s", tc.status)
	}
}
