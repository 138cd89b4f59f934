package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proforge/internal/models/db_models"
	"proforge/pkg/utils"
)

func TestSettledTransactionCannotBeReviewed(t *testing.T) {
	for _, status := range []db_models.TxnStatus{
		db_models.TxnStatusApproved,
		db_models.TxnStatusRejected,
		db_models.TxnStatusCompleted,
	} {
		txn := &db_models.WalletTransaction{Status: status}
		assert.ErrorIs(t, ensureReviewable(txn), utils.ErrTransactionSettled,
			"status=%s", status)
	}
}

func TestPendingTransactionIsReviewable(t *testing.T) {
	txn := &db_models.WalletTransaction{Status: db_models.TxnStatusPending}
	assert.NoError(t, ensureReviewable(txn))
}
