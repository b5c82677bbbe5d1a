package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidData         = errors.New("invalid data")
	ErrInvalidIndices      = errors.New("invalid reorder indices")
	ErrInvalidQuantidade   = errors.New("invalid quantidade")
	ErrProposalNotFound    = errors.New("reorder proposal not found")
	ErrReorderPendente     = errors.New("reorder pending confirmation for this date")
)

const dataLayout = "2006-01-02"

// OrderPatch is the bounded edit accepted for a committed OP. Nil fields are
// left untouched; an empty FerramentaCodigo clears the tool assignment.
type OrderPatch struct {
	QuantidadeKg     *float64
	FerramentaCodigo *string
}

// ReorderResult is the outcome of a proposed move. When Aplicado is false the
// committed list was not touched and PropostaID references the parked
// candidate ordering awaiting justification.
type ReorderResult struct {
	Aplicado   bool
	Sequencia  []entities.Order
	PropostaID string
	Violacao   *entities.ReorderViolation
}

// ISequencingUseCase exposes the committed-schedule operations of the board:
// read with derived stages, guarded reorder, and bounded per-OP edits.

type ISequencingUseCase interface {
	GetSchedule(ctx context.Context, data string) ([]entities.Order, error)
	ProposeReorder(ctx context.Context, data string, de, para int) (ReorderResult, error)
	ConfirmReorder(ctx context.Context, propostaID, justificativa string) ([]entities.Order, error)
	CancelReorder(ctx context.Context, propostaID string) error
	EditOrder(ctx context.Context, id string, patch OrderPatch) (entities.Order, error)
	ListJustifications(ctx context.Context, data string) ([]entities.ReorderJustification, error)
}

// pendingProposal parks a violating candidate ordering until the operator
// confirms or cancels. Held in memory: the board is a single-operator
// session, and dropping proposals on restart is the safe Discarded branch.
type pendingProposal struct {
	id        string
	data      string
	candidato []entities.Order
	violacao  entities.ReorderViolation
}

type SequencingUseCase struct {
	repo     interfaces.ISequenceRepository
	justRepo interfaces.IJustificationRepository

	mu        sync.Mutex
	propostas map[string]pendingProposal
	porData   map[string]string // data -> pending proposal id
}

var _ ISequencingUseCase = (*SequencingUseCase)(nil)

func NewSequencingUseCase(repo interfaces.ISequenceRepository, justRepo interfaces.IJustificationRepository) *SequencingUseCase {
	return &SequencingUseCase{
		repo:      repo,
		justRepo:  justRepo,
		propostas: map[string]pendingProposal{},
		porData:   map[string]string{},
	}
}

func (u *SequencingUseCase) GetSchedule(ctx context.Context, data string) ([]entities.Order, error) {
	data, err := normalizeData(data)
	if err != nil {
		return nil, err
	}

	orders, err := u.repo.ListByData(ctx, data)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Etapas = entities.DeriveEtapas(orders[i])
	}
	return orders, nil
}

func (u *SequencingUseCase) ProposeReorder(ctx context.Context, data string, de, para int) (ReorderResult, error) {
	data, err := normalizeData(data)
	if err != nil {
		return ReorderResult{}, err
	}

	u.mu.Lock()
	_, pendente := u.porData[data]
	u.mu.Unlock()
	if pendente {
		return ReorderResult{}, ErrReorderPendente
	}

	seq, err := u.repo.ListByData(ctx, data)
	if err != nil {
		return ReorderResult{}, err
	}
	if de < 0 || para < 0 || de >= len(seq) || para >= len(seq) {
		return ReorderResult{}, ErrInvalidIndices
	}
	if de == para {
		return ReorderResult{Aplicado: true, Sequencia: seq}, nil
	}

	candidato := entities.MoveOrder(seq, de, para)

	if v := entities.DetectUrgencyViolation(seq, de, para); v != nil {
		p := pendingProposal{
			id:        uuid.NewString(),
			data:      data,
			candidato: candidato,
			violacao:  *v,
		}
		// Re-check under the lock: another propose for the date may have
		// parked a proposal while the sequence was being read.
		u.mu.Lock()
		if _, pendente := u.porData[data]; pendente {
			u.mu.Unlock()
			return ReorderResult{}, ErrReorderPendente
		}
		u.propostas[p.id] = p
		u.porData[data] = p.id
		u.mu.Unlock()
		return ReorderResult{PropostaID: p.id, Violacao: v}, nil
	}

	if err := u.repo.ReplaceSequence(ctx, data, candidato); err != nil {
		return ReorderResult{}, err
	}
	return ReorderResult{Aplicado: true, Sequencia: candidato}, nil
}

func (u *SequencingUseCase) ConfirmReorder(ctx context.Context, propostaID, justificativa string) ([]entities.Order, error) {
	propostaID = strings.TrimSpace(propostaID)
	if propostaID == "" {
		return nil, ErrProposalNotFound
	}

	u.mu.Lock()
	p, ok := u.propostas[propostaID]
	u.mu.Unlock()
	if !ok {
		return nil, ErrProposalNotFound
	}

	// The audit record gates the commit: it must be durable before the
	// sequence is rewritten, so a failed write leaves the proposal parked and
	// the committed ordering untouched.
	j := entities.ReorderJustification{
		ID:            uuid.NewString(),
		Data:          p.data,
		OrdemID:       p.violacao.OrdemID,
		DeIndice:      p.violacao.DeIndice,
		ParaIndice:    p.violacao.ParaIndice,
		Justificativa: strings.TrimSpace(justificativa),
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := u.justRepo.Create(ctx, j); err != nil {
		return nil, err
	}

	if err := u.repo.ReplaceSequence(ctx, p.data, p.candidato); err != nil {
		return nil, err
	}

	u.mu.Lock()
	delete(u.propostas, propostaID)
	delete(u.porData, p.data)
	u.mu.Unlock()

	return p.candidato, nil
}

func (u *SequencingUseCase) CancelReorder(_ context.Context, propostaID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	p, ok := u.propostas[propostaID]
	if !ok {
		return ErrProposalNotFound
	}
	delete(u.propostas, propostaID)
	delete(u.porData, p.data)
	return nil
}

func (u *SequencingUseCase) EditOrder(ctx context.Context, id string, patch OrderPatch) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if patch.QuantidadeKg != nil && *patch.QuantidadeKg < 1 {
		return entities.Order{}, ErrInvalidQuantidade
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	quantidade := o.QuantidadeKg
	if patch.QuantidadeKg != nil {
		quantidade = *patch.QuantidadeKg
	}
	ferramenta := o.FerramentaCodigo
	if patch.FerramentaCodigo != nil {
		ferramenta = strings.TrimSpace(*patch.FerramentaCodigo)
	}

	updated, err := u.repo.UpdateEdit(ctx, id, quantidade, ferramenta)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *SequencingUseCase) ListJustifications(ctx context.Context, data string) ([]entities.ReorderJustification, error) {
	data, err := normalizeData(data)
	if err != nil {
		return nil, err
	}
	return u.justRepo.ListByData(ctx, data)
}

func normalizeData(data string) (string, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return "", ErrInvalidData
	}
	if _, err := time.Parse(dataLayout, data); err != nil {
		return "", ErrInvalidData
	}
	return data, nil
}
