package ledger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/domain"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCompanyRepo struct {
	company *entity.Company
}

func (m *memCompanyRepo) Create(context.Context, *entity.Company) error { return nil }
func (m *memCompanyRepo) GetByOwner(context.Context, string) (*entity.Company, error) {
	return m.company, nil
}

// memDocumentRepo registra el historial de estados de cada documento.
type memDocumentRepo struct {
	created       []*entity.FinancialDocument
	statusHistory []string
}

func (m *memDocumentRepo) Create(_ context.Context, doc *entity.FinancialDocument) error {
	m.created = append(m.created, doc)
	return nil
}

func (m *memDocumentRepo) UpdateStatus(_ context.Context, _, status string) error {
	m.statusHistory = append(m.statusHistory, status)
	return nil
}

func (m *memDocumentRepo) GetByID(context.Context, string) (*entity.FinancialDocument, error) {
	return nil, nil
}

type memTransactionRepo struct {
	created []*entity.Transaction
}

func (m *memTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	m.created = append(m.created, t)
	return nil
}

func (m *memTransactionRepo) ListRecentByCompany(context.Context, string, int) ([]*entity.Transaction, error) {
	return nil, nil
}

// memInventoryRepo replica la semántica del upsert atómico: suma cantidades,
// sobrescribe precio y conserva el SKU original en conflicto.
type memInventoryRepo struct {
	byName map[string]*entity.InventoryItem
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{byName: map[string]*entity.InventoryItem{}}
}

func (m *memInventoryRepo) AddStock(_ context.Context, item *entity.InventoryItem) error {
	if existing, ok := m.byName[item.ProductName]; ok {
		existing.QuantityOnHand += item.QuantityOnHand
		existing.UnitPrice = item.UnitPrice
		return nil
	}
	cp := *item
	m.byName[item.ProductName] = &cp
	return nil
}

func (m *memInventoryRepo) ListInStock(context.Context, string) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (m *memInventoryRepo) GetByProductName(_ context.Context, _, name string) (*entity.InventoryItem, error) {
	return m.byName[name], nil
}

type memMemoryRepo struct {
	created []*entity.AuraMemory
}

func (m *memMemoryRepo) Create(_ context.Context, mem *entity.AuraMemory) error {
	mem.ID = int64(len(m.created) + 1)
	m.created = append(m.created, mem)
	return nil
}

// memTxRunner ejecuta el callback sobre los fakes sin transacción real.
type memTxRunner struct {
	docs *memDocumentRepo
	txs  *memTransactionRepo
	inv  *memInventoryRepo
	mem  *memMemoryRepo
}

func (m *memTxRunner) Run(ctx context.Context, fn func(
	docs repository.DocumentRepository,
	txs repository.TransactionRepository,
	inv repository.InventoryRepository,
	mem repository.MemoryRepository,
) error) error {
	return fn(m.docs, m.txs, m.inv, m.mem)
}

// fakeExtractor devuelve un resultado fijo o un error configurado.
type fakeExtractor struct {
	result *dto.ExtractionResult
	err    error
}

func (f *fakeExtractor) ExtractDocument(context.Context, string, string) (*dto.ExtractionResult, error) {
	return f.result, f.err
}

func (f *fakeExtractor) Engine() string { return "FAKE" }

type scanFixture struct {
	uc   *ScanUseCase
	docs *memDocumentRepo
	txs  *memTransactionRepo
	inv  *memInventoryRepo
	mem  *memMemoryRepo
}

func buildScanFixture(extractor *fakeExtractor) *scanFixture {
	docs := &memDocumentRepo{}
	txs := &memTransactionRepo{}
	inv := newMemInventoryRepo()
	mem := &memMemoryRepo{}
	runner := &memTxRunner{docs: docs, txs: txs, inv: inv, mem: mem}
	companies := &memCompanyRepo{company: &entity.Company{ID: "co-1", Name: "Mansour Global Ltd"}}
	return &scanFixture{
		uc:   NewScanUseCase(companies, docs, extractor, runner),
		docs: docs,
		txs:  txs,
		inv:  inv,
		mem:  mem,
	}
}

func sampleResult() *dto.ExtractionResult {
	return &dto.ExtractionResult{
		Merchant:      "Apple Store Dubai Mall",
		Date:          "2026-08-20",
		Total:         8400.00,
		Tax:           400.00,
		Currency:      "AED",
		Category:      "Inventory",
		Description:   "Achat Stock iPhone",
		IsDeductible:  true,
		Justification: "Achat de marchandises.",
		LineItems: []dto.ExtractedLineItem{
			{Name: "iPhone 15 Pro Max 256GB", SKU: "IPH-15PM-256", Quantity: 2, UnitPrice: 4000.00},
		},
	}
}

func sampleInput() dto.ScanInput {
	return dto.ScanInput{
		OriginalFilename: "facture.pdf",
		StoredFilename:   "user-1_1756300000_facture.pdf",
		FilePath:         "uploads/user-1_1756300000_facture.pdf",
		MimeType:         "application/pdf",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Scan — pipeline completo
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_PipelineCompleto(t *testing.T) {
	fx := buildScanFixture(&fakeExtractor{result: sampleResult()})

	out, err := fx.uc.Scan(context.Background(), "user-1", sampleInput())
	require.NoError(t, err)
	require.True(t, out.Success)
	assert.Equal(t, "Apple Store Dubai Mall", out.Data.Merchant)

	// Ciclo de vida: el documento nace PENDING y pasa por ANALYZING → COMPLETED
	require.Len(t, fx.docs.created, 1)
	assert.Equal(t, entity.DocumentStatusPending, fx.docs.created[0].Status)
	assert.Equal(t, []string{entity.DocumentStatusAnalyzing, entity.DocumentStatusCompleted}, fx.docs.statusHistory)

	// Asiento contable enlazado al documento
	require.Len(t, fx.txs.created, 1)
	entry := fx.txs.created[0]
	assert.Equal(t, fx.docs.created[0].ID, entry.DocumentID)
	assert.Equal(t, "8400", entry.AmountTotal.String())
	assert.Equal(t, "400", entry.AmountTax.String())
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), entry.Date)

	// Inventario fusionado desde las líneas
	item := fx.inv.byName["iPhone 15 Pro Max 256GB"]
	require.NotNil(t, item)
	assert.Equal(t, 2, item.QuantityOnHand)

	// La memoria black box archiva el par contexto/salida
	require.Len(t, fx.mem.created, 1)
	assert.Equal(t, fx.docs.created[0].ID, fx.mem.created[0].DocumentID)
	assert.Contains(t, fx.mem.created[0].RawTextInput, "user-1_1756300000_facture.pdf")
	assert.Contains(t, string(fx.mem.created[0].AIJSONOutput), "Apple Store Dubai Mall")
}

func TestScan_ReferenciaContable(t *testing.T) {
	fx := buildScanFixture(&fakeExtractor{result: sampleResult()})

	_, err := fx.uc.Scan(context.Background(), "user-1", sampleInput())
	require.NoError(t, err)

	entry := fx.txs.created[0]
	docRef := strings.ToUpper(fx.docs.created[0].ID[:8])
	expected := "J-" + time.Now().Format("2006") + "-" + docRef
	assert.Equal(t, expected, entry.EntryNumber)
}

func TestScan_FalloDelExtractor_DocumentoFAILED(t *testing.T) {
	fx := buildScanFixture(&fakeExtractor{err: errors.New("motor caído")})

	_, err := fx.uc.Scan(context.Background(), "user-1", sampleInput())
	require.Error(t, err)

	assert.Equal(t, []string{entity.DocumentStatusAnalyzing, entity.DocumentStatusFailed}, fx.docs.statusHistory)
	assert.Empty(t, fx.txs.created, "sin resultado no se escribe asiento")
	assert.Empty(t, fx.mem.created, "sin resultado no se escribe memoria")
}

func TestScan_ResultadoNil_DocumentoFAILED(t *testing.T) {
	fx := buildScanFixture(&fakeExtractor{result: nil, err: nil})

	_, err := fx.uc.Scan(context.Background(), "user-1", sampleInput())
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	assert.Equal(t, []string{entity.DocumentStatusAnalyzing, entity.DocumentStatusFailed}, fx.docs.statusHistory)
}

func TestScan_UsuarioSinSociedad(t *testing.T) {
	docs := &memDocumentRepo{}
	uc := NewScanUseCase(&memCompanyRepo{}, docs, &fakeExtractor{result: sampleResult()}, &memTxRunner{docs: docs})

	_, err := uc.Scan(context.Background(), "user-sin-sociedad", sampleInput())
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.Empty(t, docs.created, "sin sociedad no se crea documento")
}

// Fecha no parseable → el asiento usa la fecha actual en lugar de fallar.
func TestScan_FechaInvalida_UsaFechaActual(t *testing.T) {
	result := sampleResult()
	result.Date = "pas-une-date"
	fx := buildScanFixture(&fakeExtractor{result: result})

	_, err := fx.uc.Scan(context.Background(), "user-1", sampleInput())
	require.NoError(t, err)

	entry := fx.txs.created[0]
	assert.WithinDuration(t, time.Now(), entry.Date, time.Minute)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyLineItems — fusión de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyLineItems_FusionaCantidadYActualizaPrecio(t *testing.T) {
	inv := newMemInventoryRepo()

	err := ApplyLineItems(context.Background(), inv, "co-1", []dto.ExtractedLineItem{
		{Name: "iPhone 15 Pro Max 256GB", SKU: "IPH-15PM-256", Quantity: 2, UnitPrice: 4200.00},
	})
	require.NoError(t, err)
	err = ApplyLineItems(context.Background(), inv, "co-1", []dto.ExtractedLineItem{
		{Name: "iPhone 15 Pro Max 256GB", SKU: "OTRO-SKU", Quantity: 4, UnitPrice: 4000.00},
	})
	require.NoError(t, err)

	item := inv.byName["iPhone 15 Pro Max 256GB"]
	require.NotNil(t, item)
	assert.Equal(t, 6, item.QuantityOnHand, "las cantidades se suman")
	assert.Equal(t, "4000", item.UnitPrice.String(), "el precio refleja la última observación")
	assert.Equal(t, "IPH-15PM-256", item.SKU, "el SKU original se conserva en conflicto")
}

func TestApplyLineItems_OmiteLineasInvalidas(t *testing.T) {
	inv := newMemInventoryRepo()

	err := ApplyLineItems(context.Background(), inv, "co-1", []dto.ExtractedLineItem{
		{Name: "Cantidad cero", SKU: "SKU-0", Quantity: 0, UnitPrice: 10},
		{Name: "Cantidad negativa", SKU: "SKU-N", Quantity: -3, UnitPrice: 10},
		{Name: "", SKU: "SIN-NOMBRE", Quantity: 5, UnitPrice: 10},
		{Name: "Válido", SKU: "SKU-OK", Quantity: 1, UnitPrice: 10},
	})
	require.NoError(t, err)

	assert.Len(t, inv.byName, 1, "solo la línea válida llega al stock")
	assert.NotNil(t, inv.byName["Válido"])
}

func TestApplyLineItems_SintetizaSKU(t *testing.T) {
	inv := newMemInventoryRepo()

	err := ApplyLineItems(context.Background(), inv, "co-1", []dto.ExtractedLineItem{
		{Name: "Producto sin SKU", Quantity: 1, UnitPrice: 25},
	})
	require.NoError(t, err)

	item := inv.byName["Producto sin SKU"]
	require.NotNil(t, item)
	assert.True(t, strings.HasPrefix(item.SKU, "GEN-"), "SKU ausente se sintetiza con prefijo GEN-")
	assert.Len(t, item.SKU, len("GEN-")+8)
	assert.Equal(t, strings.ToUpper(item.SKU), item.SKU)
}
