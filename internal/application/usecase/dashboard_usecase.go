package usecase

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/domain"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

// dashboardLimit máximo de transacciones en el tablero.
const dashboardLimit = 20

// DashboardUseCase arma las vistas de lectura por sociedad: tablero de
// transacciones, inventario en stock y activos fijos.
type DashboardUseCase struct {
	companies    repository.CompanyRepository
	transactions repository.TransactionRepository
	inventory    repository.InventoryRepository
	assets       repository.FixedAssetRepository
}

// NewDashboardUseCase construye el caso de uso de lectura.
func NewDashboardUseCase(
	companies repository.CompanyRepository,
	transactions repository.TransactionRepository,
	inventory repository.InventoryRepository,
	assets repository.FixedAssetRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		companies:    companies,
		transactions: transactions,
		inventory:    inventory,
		assets:       assets,
	}
}

// GetDashboard devuelve el nombre de la sociedad y sus últimas 20
// transacciones, de la más reciente a la más antigua.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	company, err := uc.companies.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	list, err := uc.transactions.ListRecentByCompany(ctx, company.ID, dashboardLimit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TransactionDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionDTO(t))
	}
	return &dto.DashboardResponse{Company: company.Name, Transactions: out}, nil
}

// GetInventory devuelve los artículos con stock, del más al menos surtido.
// Usuario sin sociedad → lista vacía (no es error).
func (uc *DashboardUseCase) GetInventory(ctx context.Context, userID string) ([]dto.InventoryItemDTO, error) {
	company, err := uc.companies.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return []dto.InventoryItemDTO{}, nil
	}

	items, err := uc.inventory.ListInStock(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		price, _ := it.UnitPrice.Float64()
		out = append(out, dto.InventoryItemDTO{
			ID:                it.ID,
			ProductName:       it.ProductName,
			SKU:               it.SKU,
			QuantityOnHand:    it.QuantityOnHand,
			UnitPrice:         price,
			LowStockThreshold: it.LowStockThreshold,
		})
	}
	return out, nil
}

// GetFixedAssets devuelve los activos fijos de la sociedad del usuario.
func (uc *DashboardUseCase) GetFixedAssets(ctx context.Context, userID string) ([]dto.FixedAssetDTO, error) {
	company, err := uc.companies.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return []dto.FixedAssetDTO{}, nil
	}

	assets, err := uc.assets.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FixedAssetDTO, 0, len(assets))
	for _, a := range assets {
		price, _ := a.PurchasePrice.Float64()
		current, _ := a.CurrentValue.Float64()
		out = append(out, dto.FixedAssetDTO{
			ID:            a.ID,
			AssetName:     a.AssetName,
			PurchaseDate:  a.PurchaseDate.Format("2006-01-02"),
			PurchasePrice: price,
			LifespanYears: a.LifespanYears,
			CurrentValue:  current,
		})
	}
	return out, nil
}

func toTransactionDTO(t *entity.Transaction) dto.TransactionDTO {
	total, _ := t.AmountTotal.Float64()
	tax, _ := t.AmountTax.Float64()
	return dto.TransactionDTO{
		ID:                     t.ID,
		DocumentID:             t.DocumentID,
		EntryNumber:            t.EntryNumber,
		Date:                   t.Date.Format("2006-01-02"),
		MerchantName:           t.MerchantName,
		Description:            t.Description,
		AmountTotal:            total,
		AmountTax:              tax,
		Currency:               t.Currency,
		Category:               t.Category,
		IsTaxDeductible:        t.IsTaxDeductible,
		DeductionJustification: t.DeductionJustification,
	}
}
