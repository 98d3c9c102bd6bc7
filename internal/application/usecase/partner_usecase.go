package usecase

import "github.com/uhg-tech/aura-core/internal/application/dto"

// PartnerUseCase sirve el panel B2B de comisiones para agencias partner.
// Datos fijos de demostración comercial; el partner_id solo se registra en logs.
type PartnerUseCase struct{}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase() *PartnerUseCase {
	return &PartnerUseCase{}
}

// GetStats devuelve las métricas de demostración del programa de partners.
func (uc *PartnerUseCase) GetStats(partnerID string) *dto.PartnerStats {
	_ = partnerID
	return &dto.PartnerStats{
		PartnerName:          "Virtuzone Corporate Services",
		Tier:                 "PLATINUM",
		TotalClientsReferred: 142,
		ActiveSubscriptions:  128,
		CommissionRate:       0.20,
		CurrentMonthRevenue:  12450.00,
		PendingCommission:    2490.00,
		RecentActivity: []dto.PartnerActivity{
			{Date: "2025-11-30", Client: "TechFlow FZ-LLC", Plan: "PRO Annual", Commission: "+$160"},
			{Date: "2025-11-29", Client: "DubAI Solutions", Plan: "PRO Monthly", Commission: "+$16"},
			{Date: "2025-11-29", Client: "CryptoKing Trading", Plan: "ENTERPRISE", Commission: "+$500"},
		},
	}
}
