package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhg-tech/aura-core/internal/domain"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de lectura
// ──────────────────────────────────────────────────────────────────────────────

type stubCompanyRepo struct {
	company *entity.Company
}

func (s *stubCompanyRepo) Create(context.Context, *entity.Company) error { return nil }
func (s *stubCompanyRepo) GetByOwner(context.Context, string) (*entity.Company, error) {
	return s.company, nil
}

type stubTransactionRepo struct {
	list      []*entity.Transaction
	lastLimit int
}

func (s *stubTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) ListRecentByCompany(_ context.Context, _ string, limit int) ([]*entity.Transaction, error) {
	s.lastLimit = limit
	return s.list, nil
}

type stubInventoryRepo struct {
	items []*entity.InventoryItem
}

func (s *stubInventoryRepo) AddStock(context.Context, *entity.InventoryItem) error { return nil }
func (s *stubInventoryRepo) ListInStock(context.Context, string) ([]*entity.InventoryItem, error) {
	return s.items, nil
}
func (s *stubInventoryRepo) GetByProductName(context.Context, string, string) (*entity.InventoryItem, error) {
	return nil, nil
}

type stubAssetRepo struct {
	assets []*entity.FixedAsset
}

func (s *stubAssetRepo) ListByCompany(context.Context, string) ([]*entity.FixedAsset, error) {
	return s.assets, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_SinSociedad_RetornaError(t *testing.T) {
	uc := NewDashboardUseCase(&stubCompanyRepo{}, &stubTransactionRepo{}, &stubInventoryRepo{}, &stubAssetRepo{})

	_, err := uc.GetDashboard(context.Background(), "user-sin-sociedad")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestDashboard_MapeaTransaccionesYLimite(t *testing.T) {
	txRepo := &stubTransactionRepo{list: []*entity.Transaction{
		{
			ID:           "tx-1",
			EntryNumber:  "J-2026-ABCDEF12",
			Date:         time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			MerchantName: "Apple Store Dubai Mall",
			AmountTotal:  decimal.NewFromFloat(8400.00),
			AmountTax:    decimal.NewFromFloat(400.00),
			Currency:     "AED",
		},
	}}
	uc := NewDashboardUseCase(
		&stubCompanyRepo{company: &entity.Company{ID: "co-1", Name: "Mansour Global Ltd"}},
		txRepo, &stubInventoryRepo{}, &stubAssetRepo{},
	)

	out, err := uc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 20, txRepo.lastLimit, "el tablero pide como máximo 20 transacciones")
	assert.Equal(t, "Mansour Global Ltd", out.Company)
	require.Len(t, out.Transactions, 1)
	got := out.Transactions[0]
	assert.Equal(t, "J-2026-ABCDEF12", got.EntryNumber)
	assert.Equal(t, "2026-08-20", got.Date)
	assert.Equal(t, 8400.00, got.AmountTotal, "los importes salen como número JSON, no string")
	assert.Equal(t, 400.00, got.AmountTax)
}

// Usuario sin sociedad: inventario y activos responden lista vacía, no error.
func TestInventoryYAssets_SinSociedad_ListaVacia(t *testing.T) {
	uc := NewDashboardUseCase(&stubCompanyRepo{}, &stubTransactionRepo{}, &stubInventoryRepo{}, &stubAssetRepo{})

	items, err := uc.GetInventory(context.Background(), "user-sin-sociedad")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	assets, err := uc.GetFixedAssets(context.Background(), "user-sin-sociedad")
	require.NoError(t, err)
	assert.NotNil(t, assets)
	assert.Empty(t, assets)
}

func TestInventory_MapeaArticulos(t *testing.T) {
	uc := NewDashboardUseCase(
		&stubCompanyRepo{company: &entity.Company{ID: "co-1", Name: "Mansour Global Ltd"}},
		&stubTransactionRepo{},
		&stubInventoryRepo{items: []*entity.InventoryItem{
			{
				ID: "inv-1", ProductName: "iPhone 15 Pro Max 256GB", SKU: "IPH-15PM-256",
				QuantityOnHand: 6, UnitPrice: decimal.NewFromFloat(4000.00), LowStockThreshold: 5,
			},
		}},
		&stubAssetRepo{},
	)

	items, err := uc.GetInventory(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "iPhone 15 Pro Max 256GB", items[0].ProductName)
	assert.Equal(t, 6, items[0].QuantityOnHand)
	assert.Equal(t, 4000.00, items[0].UnitPrice)
}

func TestPartner_PayloadDemo(t *testing.T) {
	uc := NewPartnerUseCase()

	out := uc.GetStats("cualquier-partner")
	assert.Equal(t, "Virtuzone Corporate Services", out.PartnerName)
	assert.Equal(t, "PLATINUM", out.Tier)
	assert.Equal(t, 0.20, out.CommissionRate)
	assert.Len(t, out.RecentActivity, 3)
}
