package response_models

type DashboardStatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	NewUsers            int64 `json:"new_users"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	PendingTransactions int64 `json:"pending_transactions"`
	RevenueMinor        int64 `json:"revenue_minor"`
	DepositVolumeMinor  int64 `json:"deposit_volume_minor"`
	ProfilesCreated     int64 `json:"profiles_created"`

	RangeStart int64 `json:"range_start"`
	RangeEnd   int64 `json:"range_end"`
}
