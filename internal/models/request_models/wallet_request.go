package request_models

type DepositRequest struct {
	AmountMinor int64  `json:"amount_minor" binding:"required,gt=0"`
	Reference   string `json:"reference" binding:"omitempty,max=128"`
}

type WithdrawRequest struct {
	AmountMinor int64  `json:"amount_minor" binding:"required,gt=0"`
	Reference   string `json:"reference" binding:"omitempty,max=128"`
}
