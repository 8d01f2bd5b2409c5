package dto

import "time"

type DashboardStatsResponse struct {
	TotalUsers         int64                    `json:"total_users"`
	ActiveUsers        int64                    `json:"active_users"`
	TotalTransactions  int64                    `json:"total_transactions"`
	TotalAmount        float64                  `json:"total_amount"`
	PendingKyc         int64                    `json:"pending_kyc"`
	CompletedKyc       int64                    `json:"completed_kyc"`
	RecentTransactions []TransactionResponse    `json:"recent_transactions"`
	RecentActivities   []RecentActivityResponse `json:"recent_activities"`
	Degraded           bool                     `json:"degraded"`
	GeneratedAt        time.Time                `json:"generated_at"`
}

// --- System Log DTOs ---

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
