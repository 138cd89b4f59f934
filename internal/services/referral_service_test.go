package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proforge/internal/models/db_models"
)

func TestCommissionLevels(t *testing.T) {
	require.Len(t, CommissionLevels, 3)
	assert.Equal(t, CommissionLevel{Level: 1, Percent: 10}, CommissionLevels[0])
	assert.Equal(t, CommissionLevel{Level: 2, Percent: 5}, CommissionLevels[1])
	assert.Equal(t, CommissionLevel{Level: 3, Percent: 2}, CommissionLevels[2])
}

func TestCommissionAmountTruncates(t *testing.T) {
	cases := []struct {
		amount  int64
		percent float64
		want    int64
	}{
		{10000, 10, 1000},
		{999, 10, 99},  // 99.9 truncates down
		{100, 5, 5},
		{50, 2, 1},     // 1.0 exactly
		{49, 2, 0},     // 0.98 truncates to nothing
		{0, 10, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CommissionAmount(tc.amount, tc.percent),
			"amount=%d percent=%v", tc.amount, tc.percent)
	}
}

func TestReferralStats(t *testing.T) {
	accountID := uuid.New()

	profileRepo := newFakeWalletProfileRepo()
	_ = profileRepo.Insert(context.Background(), &db_models.WalletProfile{
		AccountID:     accountID,
		ReferralCode:  "ABCD2345",
		ReferralCount: 4,
	})

	referralRepo := &fakeReferralRepo{earnings: []db_models.ReferralEarning{
		{ReferrerID: accountID, Level: 1, AmountMinor: 990},
		{ReferrerID: accountID, Level: 2, AmountMinor: 495},
		{ReferrerID: uuid.New(), Level: 1, AmountMinor: 777}, // someone else's
	}}

	svc := NewReferralService(profileRepo, referralRepo)

	stats, err := svc.Stats(context.Background(), accountID)
	require.NoError(t, err)

	assert.Equal(t, "ABCD2345", stats.ReferralCode)
	assert.Equal(t, 4, stats.ReferralCount)
	assert.Equal(t, int64(1485), stats.TotalEarnedMinor)
}

func TestReferralEarningsOnlyOwn(t *testing.T) {
	accountID := uuid.New()

	referralRepo := &fakeReferralRepo{earnings: []db_models.ReferralEarning{
		{ReferrerID: accountID, Level: 1, AmountMinor: 100},
		{ReferrerID: uuid.New(), Level: 1, AmountMinor: 200},
	}}

	svc := NewReferralService(newFakeWalletProfileRepo(), referralRepo)

	earnings, err := svc.Earnings(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, earnings, 1)
	assert.Equal(t, int64(100), earnings[0].AmountMinor)
}
