package response_models

import "github.com/google/uuid"

type WalletResponse struct {
	BalanceMinor       int64  `json:"balance_minor"`
	TotalEarningsMinor int64  `json:"total_earnings_minor"`
	ReferralCode       string `json:"referral_code"`
}

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	AdminNote   *string   `json:"admin_note,omitempty"`
	ProcessedAt *int64    `json:"processed_at,omitempty"`
	CreatedAt   int64     `json:"created_at"`
}

type PaymentSettingsResponse struct {
	Instructions    string `json:"instructions"`
	MinDepositMinor int64  `json:"min_deposit_minor"`
	MaxDepositMinor int64  `json:"max_deposit_minor"`
	Currency        string `json:"currency"`
}
