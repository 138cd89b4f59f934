package response_models

import "github.com/google/uuid"

type ReferralStatsResponse struct {
	ReferralCode     string `json:"referral_code"`
	ReferralCount    int    `json:"referral_count"`
	TotalEarnedMinor int64  `json:"total_earned_minor"`
}

type ReferralEarningResponse struct {
	ID                  uuid.UUID `json:"id"`
	ReferredID          uuid.UUID `json:"referred_id"`
	SourceTransactionID uuid.UUID `json:"source_transaction_id"`
	Level               int       `json:"level"`
	Percent             float64   `json:"percent"`
	AmountMinor         int64     `json:"amount_minor"`
	CreatedAt           int64     `json:"created_at"`
}
