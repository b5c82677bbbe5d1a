package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemID       = errors.New("invalid preview item id")
	ErrERPGatewayNotConfig = errors.New("erp gateway not configured")
)

// PreviewPatch is the bounded edit accepted for a staged item. A non-nil
// empty FerramentaManual clears the manual override.
type PreviewPatch struct {
	FerramentaManual *string
}

// IStagingUseCase manages the preview collection: items sourced from the ERP
// that are not yet part of the committed schedule.
//
// Missing-id semantics follow the board's concurrency model: UpdateItem
// returns a zero item (not an error) and RemoveItem is idempotent, because a
// concurrent confirm/remove having won the race is normal, not a failure.

type IStagingUseCase interface {
	ImportFromERP(ctx context.Context, data string) ([]entities.PreviewItem, error)
	List(ctx context.Context, data string) ([]entities.PreviewItem, error)
	UpdateItem(ctx context.Context, data, itemID string, patch PreviewPatch) (entities.PreviewItem, error)
	RemoveItem(ctx context.Context, data, itemID string) error
	Confirm(ctx context.Context, data string, itemIDs []string) ([]entities.Order, error)
}

type StagingUseCase struct {
	previewRepo  interfaces.IPreviewRepository
	sequenceRepo interfaces.ISequenceRepository
	suggester    interfaces.IToolSuggester
	erp          interfaces.IERPGateway
}

var _ IStagingUseCase = (*StagingUseCase)(nil)

func NewStagingUseCase(
	previewRepo interfaces.IPreviewRepository,
	sequenceRepo interfaces.ISequenceRepository,
	suggester interfaces.IToolSuggester,
	erp interfaces.IERPGateway,
) *StagingUseCase {
	return &StagingUseCase{previewRepo: previewRepo, sequenceRepo: sequenceRepo, suggester: suggester, erp: erp}
}

// ImportFromERP merges newly-sourced candidate OPs into the date's preview.
// Codes already staged or already committed for the date are skipped, which
// keeps manual tool overrides intact across repeated imports.
func (u *StagingUseCase) ImportFromERP(ctx context.Context, data string) ([]entities.PreviewItem, error) {
	data, err := normalizeData(data)
	if err != nil {
		return nil, err
	}
	if u.erp == nil {
		return nil, ErrERPGatewayNotConfig
	}

	log.Printf("[staging][usecase] import start data=%s", data)
	novos, err := u.erp.FetchNewOrders(ctx, data)
	if err != nil {
		log.Printf("[staging][usecase] erp fetch failed data=%s err=%v", data, err)
		return nil, err
	}

	existentes, err := u.previewRepo.ListByData(ctx, data)
	if err != nil {
		return nil, err
	}
	comprometidas, err := u.sequenceRepo.ListByData(ctx, data)
	if err != nil {
		return nil, err
	}

	conhecidos := make(map[string]bool, len(existentes)+len(comprometidas))
	for _, it := range existentes {
		conhecidos[it.OPTotvsCodigo] = true
	}
	for _, o := range comprometidas {
		conhecidos[o.OPTotvsCodigo] = true
	}

	importados := 0
	for _, n := range novos {
		codigo := strings.TrimSpace(n.OPTotvsCodigo)
		if codigo == "" || conhecidos[codigo] {
			continue
		}

		sugerida, err := u.suggester.Suggest(ctx, n.Produto, n.Liga, n.Tempera)
		if err != nil {
			log.Printf("[staging][usecase] tool suggestion failed data=%s codigo=%s err=%v", data, codigo, err)
			return nil, err
		}

		now := time.Now().UTC()
		item := entities.PreviewItem{
			ID:                 uuid.NewString(),
			Data:               data,
			OPTotvsCodigo:      codigo,
			Produto:            n.Produto,
			Liga:               n.Liga,
			Tempera:            n.Tempera,
			QuantidadeKg:       n.QuantidadeKg,
			TipoPosse:          n.TipoPosse,
			Cliente:            n.Cliente,
			DataEntrega:        n.DataEntrega,
			FerramentaSugerida: sugerida,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		item.RecomputeSemFerramenta()

		if _, err := u.previewRepo.Put(ctx, item); err != nil {
			return nil, err
		}
		conhecidos[codigo] = true
		importados++
	}
	log.Printf("[staging][usecase] import done data=%s recebidos=%d importados=%d", data, len(novos), importados)

	return u.previewRepo.ListByData(ctx, data)
}

func (u *StagingUseCase) List(ctx context.Context, data string) ([]entities.PreviewItem, error) {
	data, err := normalizeData(data)
	if err != nil {
		return nil, err
	}
	return u.previewRepo.ListByData(ctx, data)
}

// UpdateItem applies a bounded patch to one staged item. A zero-value return
// with nil error means the item was gone for that date: a benign race.
func (u *StagingUseCase) UpdateItem(ctx context.Context, data, itemID string, patch PreviewPatch) (entities.PreviewItem, error) {
	data, err := normalizeData(data)
	if err != nil {
		return entities.PreviewItem{}, err
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.PreviewItem{}, ErrInvalidItemID
	}

	item, err := u.previewRepo.GetByID(ctx, itemID)
	if err != nil {
		return entities.PreviewItem{}, err
	}
	if item.ID == "" || item.Data != data {
		return entities.PreviewItem{}, nil
	}

	if patch.FerramentaManual != nil {
		item.FerramentaManual = strings.TrimSpace(*patch.FerramentaManual)
	}
	item.RecomputeSemFerramenta()
	item.UpdatedAt = time.Now().UTC()

	return u.previewRepo.Put(ctx, item)
}

func (u *StagingUseCase) RemoveItem(ctx context.Context, data, itemID string) error {
	data, err := normalizeData(data)
	if err != nil {
		return err
	}
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrInvalidItemID
	}

	item, err := u.previewRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ID == "" || item.Data != data {
		return nil
	}
	return u.previewRepo.Delete(ctx, itemID)
}

// Confirm promotes staged items into the committed schedule for the date.
// Ids that no longer exist are skipped, not fatal to the rest of the batch.
func (u *StagingUseCase) Confirm(ctx context.Context, data string, itemIDs []string) ([]entities.Order, error) {
	data, err := normalizeData(data)
	if err != nil {
		return nil, err
	}

	seq, err := u.sequenceRepo.ListByData(ctx, data)
	if err != nil {
		return nil, err
	}
	posicao := len(seq)

	criadas := make([]entities.Order, 0, len(itemIDs))
	for _, id := range itemIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		item, err := u.previewRepo.GetByID(ctx, id)
		if err != nil {
			return criadas, err
		}
		if item.ID == "" || item.Data != data {
			log.Printf("[staging][usecase] confirm skip missing item data=%s id=%s", data, id)
			continue
		}

		now := time.Now().UTC()
		o := entities.Order{
			ID:               uuid.NewString(),
			Codigo:           item.OPTotvsCodigo,
			OPTotvsCodigo:    item.OPTotvsCodigo,
			Produto:          item.Produto,
			Liga:             item.Liga,
			Tempera:          item.Tempera,
			QuantidadeKg:     item.QuantidadeKg,
			TipoPosse:        item.TipoPosse,
			Cliente:          item.Cliente,
			Data:             data,
			DataEntrega:      item.DataEntrega,
			Posicao:          posicao,
			FerramentaCodigo: item.ResolveFerramenta(),
			Status:           entities.OrderStatusAguardando,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		created, err := u.sequenceRepo.Append(ctx, o)
		if err != nil {
			return criadas, err
		}
		if err := u.previewRepo.Delete(ctx, item.ID); err != nil {
			return criadas, err
		}
		criadas = append(criadas, created)
		posicao++
	}
	return criadas, nil
}
