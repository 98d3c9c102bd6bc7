package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/application/ports"
	"github.com/uhg-tech/aura-core/internal/domain"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

const (
	entryPrefix = "J"
	// extractTimeout acota la llamada completa al motor de extracción.
	// Sustituye al polling sin límite del diseño original.
	extractTimeout = 60 * time.Second
)

// promptContext describe el contexto de entrada que se archiva junto a la
// salida del modelo en aura_memory (estrategia black box).
const promptContext = "Prompt: Expert Fiscal UAE 2025 | File: %s"

// ScanUseCase orquesta el pipeline documento → libro contable:
// sociedad → documento → extracción IA → asiento + inventario + memoria,
// con el cierre en una única transacción.
type ScanUseCase struct {
	companies repository.CompanyRepository
	documents repository.DocumentRepository
	extractor ports.DocumentExtractor
	tx        TxRunner
}

// NewScanUseCase construye el caso de uso del scanner.
func NewScanUseCase(
	companies repository.CompanyRepository,
	documents repository.DocumentRepository,
	extractor ports.DocumentExtractor,
	tx TxRunner,
) *ScanUseCase {
	return &ScanUseCase{companies: companies, documents: documents, extractor: extractor, tx: tx}
}

// Scan procesa un documento ya guardado en disco para el usuario indicado.
//
// Ciclo de vida del documento: PENDING al crearlo, ANALYZING antes de llamar
// al extractor, COMPLETED si hubo resultado (real o sintético), FAILED solo
// si el propio extractor falló sin producir ni siquiera el fallback.
func (uc *ScanUseCase) Scan(ctx context.Context, userID string, in dto.ScanInput) (*dto.ScanResponse, error) {
	company, err := uc.companies.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	doc := &entity.FinancialDocument{
		ID:         uuid.New().String(),
		CompanyID:  company.ID,
		Filename:   in.OriginalFilename,
		FilePath:   in.FilePath,
		FileType:   in.MimeType,
		UploadDate: time.Now(),
		Status:     entity.DocumentStatusPending,
	}
	if err := uc.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	if err := uc.documents.UpdateStatus(ctx, doc.ID, entity.DocumentStatusAnalyzing); err != nil {
		return nil, err
	}

	extractCtx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	result, err := uc.extractor.ExtractDocument(extractCtx, in.FilePath, in.MimeType)
	if err != nil || result == nil {
		// Ni siquiera hubo fallback: documento en estado final FAILED.
		if stErr := uc.documents.UpdateStatus(ctx, doc.ID, entity.DocumentStatusFailed); stErr != nil {
			log.Error().Err(stErr).Str("document_id", doc.ID).Msg("marcar documento FAILED")
		}
		if err == nil {
			err = domain.ErrExtractionFailed
		}
		return nil, fmt.Errorf("extracción del documento %s: %w", doc.ID, err)
	}

	if err := uc.commit(ctx, company.ID, doc, in.StoredFilename, result); err != nil {
		return nil, err
	}

	log.Info().
		Str("document_id", doc.ID).
		Str("company_id", company.ID).
		Str("merchant", result.Merchant).
		Msg("black box: par entrada/salida archivado y asiento creado")

	return &dto.ScanResponse{Success: true, Data: result}, nil
}

// commit confirma asiento + inventario + memoria + estado COMPLETED en una
// sola transacción (todo o nada).
func (uc *ScanUseCase) commit(ctx context.Context, companyID string, doc *entity.FinancialDocument, storedFilename string, result *dto.ExtractionResult) error {
	entry := &entity.Transaction{
		ID:                     uuid.New().String(),
		CompanyID:              companyID,
		DocumentID:             doc.ID,
		EntryNumber:            entryNumber(doc.ID, time.Now()),
		Date:                   parseExtractedDate(result.Date),
		MerchantName:           result.Merchant,
		Description:            result.Description,
		AmountTotal:            decimal.NewFromFloat(result.Total),
		AmountTax:              decimal.NewFromFloat(result.Tax),
		Currency:               result.Currency,
		Category:               result.Category,
		IsTaxDeductible:        result.IsDeductible,
		DeductionJustification: result.Justification,
	}

	rawOutput, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("serializar salida IA: %w", err)
	}

	return uc.tx.Run(ctx, func(
		docs repository.DocumentRepository,
		txs repository.TransactionRepository,
		inv repository.InventoryRepository,
		mem repository.MemoryRepository,
	) error {
		if err := txs.Create(ctx, entry); err != nil {
			return err
		}
		if len(result.LineItems) > 0 {
			if err := ApplyLineItems(ctx, inv, companyID, result.LineItems); err != nil {
				return err
			}
		}
		// La memoria se escribe siempre, sea resultado real o sintético.
		memory := &entity.AuraMemory{
			DocumentID:   doc.ID,
			RawTextInput: fmt.Sprintf(promptContext, storedFilename),
			AIJSONOutput: rawOutput,
			CreatedAt:    time.Now(),
		}
		if err := mem.Create(ctx, memory); err != nil {
			return err
		}
		return docs.UpdateStatus(ctx, doc.ID, entity.DocumentStatusCompleted)
	})
}

// entryNumber construye la referencia contable J-<año>-<8 primeros chars del documento>.
func entryNumber(documentID string, now time.Time) string {
	ref := documentID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return fmt.Sprintf("%s-%d-%s", entryPrefix, now.Year(), strings.ToUpper(ref))
}

// parseExtractedDate interpreta YYYY-MM-DD; si el modelo devolvió otra cosa,
// se usa la fecha actual sin re-validar la extracción.
func parseExtractedDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Now()
	}
	return t
}
