package dto

// PartnerActivity línea de actividad reciente del panel de partner.
type PartnerActivity struct {
	Date       string `json:"date"`
	Client     string `json:"client"`
	Plan       string `json:"plan"`
	Commission string `json:"comm"`
}

// PartnerStats panel B2B de comisiones (datos de demostración).
type PartnerStats struct {
	PartnerName          string            `json:"partner_name"`
	Tier                 string            `json:"tier"`
	TotalClientsReferred int               `json:"total_clients_referred"`
	ActiveSubscriptions  int               `json:"active_subscriptions"`
	CommissionRate       float64           `json:"commission_rate"`
	CurrentMonthRevenue  float64           `json:"current_month_revenue"`
	PendingCommission    float64           `json:"pending_commission"`
	RecentActivity       []PartnerActivity `json:"recent_activity"`
}
