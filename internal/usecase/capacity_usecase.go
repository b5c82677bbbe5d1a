package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"
)

var (
	ErrInvalidModo       = errors.New("invalid modo")
	ErrInvalidCapacidade = errors.New("invalid capacity ceiling")
	ErrExceptionNotFound = errors.New("capacity exception not found")
)

const (
	ModoDia    = "dia"
	ModoSemana = "semana"
)

// ICapacityUseCase computes advisory utilization for the board and manages
// per-date ceiling exceptions. It never blocks scheduling: overrun is data,
// not an error.

type ICapacityUseCase interface {
	GetUtilization(ctx context.Context, data, modo string) (entities.CapacityPanel, error)
	UpsertException(ctx context.Context, e entities.CapacityException) (entities.CapacityException, error)
	GetException(ctx context.Context, data string) (entities.CapacityException, error)
}

type CapacityUseCase struct {
	sequenceRepo  interfaces.ISequenceRepository
	exceptionRepo interfaces.ICapacityExceptionRepository
	config        entities.CapacityConfig
}

var _ ICapacityUseCase = (*CapacityUseCase)(nil)

func NewCapacityUseCase(
	sequenceRepo interfaces.ISequenceRepository,
	exceptionRepo interfaces.ICapacityExceptionRepository,
	config entities.CapacityConfig,
) *CapacityUseCase {
	return &CapacityUseCase{sequenceRepo: sequenceRepo, exceptionRepo: exceptionRepo, config: config}
}

func (u *CapacityUseCase) GetUtilization(ctx context.Context, data, modo string) (entities.CapacityPanel, error) {
	data, err := normalizeData(data)
	if err != nil {
		return entities.CapacityPanel{}, err
	}

	switch strings.TrimSpace(modo) {
	case "", ModoDia:
		return u.utilizationDia(ctx, data)
	case ModoSemana:
		return u.utilizationSemana(ctx, data)
	default:
		return entities.CapacityPanel{}, ErrInvalidModo
	}
}

func (u *CapacityUseCase) utilizationDia(ctx context.Context, data string) (entities.CapacityPanel, error) {
	orders, err := u.sequenceRepo.ListByData(ctx, data)
	if err != nil {
		return entities.CapacityPanel{}, err
	}

	casaCap := u.config.CasaDia
	clienteCap := u.config.ClienteDia
	exc, err := u.exceptionRepo.GetByData(ctx, data)
	if err != nil {
		return entities.CapacityPanel{}, err
	}
	if exc.Data != "" {
		casaCap = exc.CasaCap
		clienteCap = exc.ClienteCap
	}

	return entities.ComputePanel(orders, casaCap, clienteCap, casaCap+clienteCap), nil
}

func (u *CapacityUseCase) utilizationSemana(ctx context.Context, data string) (entities.CapacityPanel, error) {
	inicio := weekStart(data)

	var orders []entities.Order
	for i := 0; i < 7; i++ {
		dia := inicio.AddDate(0, 0, i).Format(dataLayout)
		doDia, err := u.sequenceRepo.ListByData(ctx, dia)
		if err != nil {
			return entities.CapacityPanel{}, err
		}
		orders = append(orders, doDia...)
	}

	return entities.ComputePanel(orders, u.config.CasaSemana, u.config.ClienteSemana, u.config.TotalSemana), nil
}

func (u *CapacityUseCase) UpsertException(ctx context.Context, e entities.CapacityException) (entities.CapacityException, error) {
	data, err := normalizeData(e.Data)
	if err != nil {
		return entities.CapacityException{}, err
	}
	if e.CasaCap < 0 || e.ClienteCap < 0 {
		return entities.CapacityException{}, ErrInvalidCapacidade
	}

	e.Data = data
	e.Motivo = strings.TrimSpace(e.Motivo)
	e.UpdatedAt = time.Now().UTC()
	return u.exceptionRepo.Put(ctx, e)
}

func (u *CapacityUseCase) GetException(ctx context.Context, data string) (entities.CapacityException, error) {
	data, err := normalizeData(data)
	if err != nil {
		return entities.CapacityException{}, err
	}

	exc, err := u.exceptionRepo.GetByData(ctx, data)
	if err != nil {
		return entities.CapacityException{}, err
	}
	if exc.Data == "" {
		return entities.CapacityException{}, ErrExceptionNotFound
	}
	return exc, nil
}

// weekStart resolves the ISO week start (Monday) of a valid YYYY-MM-DD date.
func weekStart(data string) time.Time {
	t, _ := time.Parse(dataLayout, data)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
