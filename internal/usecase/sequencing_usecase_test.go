package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"extrusao_pcp/internal/domain/entities"
	mock_interfaces "extrusao_pcp/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func entrega(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seqOf(ids []string, entregas []string) []entities.Order {
	out := make([]entities.Order, len(ids))
	for i := range ids {
		out[i] = entities.Order{ID: ids[i], Data: "2024-01-02", Posicao: i, DataEntrega: entrega(entregas[i])}
	}
	return out
}

func TestSequencingUseCase_GetSchedule(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		uc := NewSequencingUseCase(nil, nil)
		if _, err := uc.GetSchedule(context.Background(), "02/01/2024"); !errors.Is(err, ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("fills derived stages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return([]entities.Order{
			{ID: "op-1", Status: entities.OrderStatusEmProducao, StatusDetalhado: "no_forno"},
		}, nil)

		got, err := uc.GetSchedule(context.Background(), " 2024-01-02 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 order, got %d", len(got))
		}
		if got[0].Etapas[entities.EtapaForno] != entities.EtapaEmProcesso {
			t.Fatalf("expected forno em_processo, got %+v", got[0].Etapas)
		}
	})
}

func TestSequencingUseCase_ProposeReorder(t *testing.T) {
	t.Run("invalid indices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seqOf([]string{"a"}, []string{"2024-01-05"}), nil)

		if _, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 3); !errors.Is(err, ErrInvalidIndices) {
			t.Fatalf("expected ErrInvalidIndices, got %v", err)
		}
	})

	t.Run("clean move applies immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		seq := seqOf([]string{"a", "b"}, []string{"2024-01-10", "2024-01-05"})
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil)
		repo.EXPECT().ReplaceSequence(gomock.Any(), "2024-01-02", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, orders []entities.Order) error {
				if orders[0].ID != "b" || orders[1].ID != "a" {
					t.Fatalf("unexpected candidate ordering: %+v", orders)
				}
				return nil
			},
		)

		res, err := uc.ProposeReorder(context.Background(), "2024-01-02", 1, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Aplicado || res.Violacao != nil {
			t.Fatalf("expected applied result, got %+v", res)
		}
	})

	t.Run("violating move parks a proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		seq := seqOf([]string{"a", "b"}, []string{"2024-01-05", "2024-01-10"})
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil)

		res, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Aplicado {
			t.Fatalf("expected unapplied result")
		}
		if res.PropostaID == "" || res.Violacao == nil || res.Violacao.OrdemID != "a" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("second propose for same date rejected while pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		seq := seqOf([]string{"a", "b"}, []string{"2024-01-05", "2024-01-10"})
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil)

		if _, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ProposeReorder(context.Background(), "2024-01-02", 1, 0); !errors.Is(err, ErrReorderPendente) {
			t.Fatalf("expected ErrReorderPendente, got %v", err)
		}
	})

	t.Run("proposal parked mid-read still blocks the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		seq := seqOf([]string{"a", "b"}, []string{"2024-01-05", "2024-01-10"})

		// The first read parks a competing proposal for the same date before
		// returning, emulating a propose that slips in between the pending
		// check and the insert.
		first := repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").DoAndReturn(
			func(ctx context.Context, data string) ([]entities.Order, error) {
				if _, err := uc.ProposeReorder(ctx, data, 0, 1); err != nil {
					t.Fatalf("unexpected error from competing propose: %v", err)
				}
				return seq, nil
			},
		)
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil).After(first)

		if _, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 1); !errors.Is(err, ErrReorderPendente) {
			t.Fatalf("expected ErrReorderPendente, got %v", err)
		}
	})

	t.Run("same index is an applied no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		seq := seqOf([]string{"a"}, []string{"2024-01-05"})
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil)

		res, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Aplicado {
			t.Fatalf("expected applied no-op")
		}
	})
}

func TestSequencingUseCase_ConfirmAndCancelReorder(t *testing.T) {
	propose := func(t *testing.T, uc *SequencingUseCase, repo *mock_interfaces.MockISequenceRepository) ReorderResult {
		t.Helper()
		seq := seqOf([]string{"a", "b"}, []string{"2024-01-05", "2024-01-10"})
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil)
		res, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return res
	}

	t.Run("confirm applies and records justification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		justRepo := mock_interfaces.NewMockIJustificationRepository(ctrl)
		uc := NewSequencingUseCase(repo, justRepo)

		res := propose(t, uc, repo)

		repo.EXPECT().ReplaceSequence(gomock.Any(), "2024-01-02", gomock.Any()).Return(nil)
		justRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ReorderJustification{})).DoAndReturn(
			func(_ context.Context, j entities.ReorderJustification) (entities.ReorderJustification, error) {
				if j.ID == "" || j.OrdemID != "a" || j.DeIndice != 0 || j.ParaIndice != 1 {
					t.Fatalf("unexpected justification: %+v", j)
				}
				if j.Justificativa != "cliente antecipou retirada" {
					t.Fatalf("unexpected text: %q", j.Justificativa)
				}
				return j, nil
			},
		)

		applied, err := uc.ConfirmReorder(context.Background(), res.PropostaID, " cliente antecipou retirada ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if applied[0].ID != "b" || applied[1].ID != "a" {
			t.Fatalf("unexpected applied ordering: %+v", applied)
		}

		// Proposal is consumed.
		if _, err := uc.ConfirmReorder(context.Background(), res.PropostaID, ""); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("confirm with empty text still records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		justRepo := mock_interfaces.NewMockIJustificationRepository(ctrl)
		uc := NewSequencingUseCase(repo, justRepo)

		res := propose(t, uc, repo)

		repo.EXPECT().ReplaceSequence(gomock.Any(), "2024-01-02", gomock.Any()).Return(nil)
		justRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.ReorderJustification) (entities.ReorderJustification, error) {
				return j, nil
			},
		)

		if _, err := uc.ConfirmReorder(context.Background(), res.PropostaID, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed justification write leaves the sequence untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		justRepo := mock_interfaces.NewMockIJustificationRepository(ctrl)
		uc := NewSequencingUseCase(repo, justRepo)

		res := propose(t, uc, repo)

		// No ReplaceSequence expectation: the commit must not happen until
		// the audit record is durable.
		justRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ReorderJustification{}, errors.New("db"))

		if _, err := uc.ConfirmReorder(context.Background(), res.PropostaID, "prensa parada"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}

		// The proposal stays parked, so the confirm can be retried.
		created := justRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.ReorderJustification) (entities.ReorderJustification, error) {
				return j, nil
			},
		)
		repo.EXPECT().ReplaceSequence(gomock.Any(), "2024-01-02", gomock.Any()).Return(nil).After(created)

		if _, err := uc.ConfirmReorder(context.Background(), res.PropostaID, "prensa parada"); err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
	})

	t.Run("cancel discards without touching the sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		res := propose(t, uc, repo)

		// No ReplaceSequence expectation: cancel must not write.
		if err := uc.CancelReorder(context.Background(), res.PropostaID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The date is mutable again after cancel.
		seq := seqOf([]string{"a", "b"}, []string{"2024-01-05", "2024-01-10"})
		repo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return(seq, nil)
		if _, err := uc.ProposeReorder(context.Background(), "2024-01-02", 0, 1); err != nil {
			t.Fatalf("unexpected error after cancel: %v", err)
		}
	})

	t.Run("cancel unknown proposal", func(t *testing.T) {
		uc := NewSequencingUseCase(nil, nil)
		if err := uc.CancelReorder(context.Background(), "nope"); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestSequencingUseCase_EditOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSequencingUseCase(nil, nil)
		if _, err := uc.EditOrder(context.Background(), "  ", OrderPatch{}); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("zero quantity rejected before any read", func(t *testing.T) {
		uc := NewSequencingUseCase(nil, nil)
		zero := 0.0
		if _, err := uc.EditOrder(context.Background(), "op-1", OrderPatch{QuantidadeKg: &zero}); !errors.Is(err, ErrInvalidQuantidade) {
			t.Fatalf("expected ErrInvalidQuantidade, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Order{}, nil)

		if _, err := uc.EditOrder(context.Background(), "op-1", OrderPatch{}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("patch merges over current values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		current := entities.Order{ID: "op-1", QuantidadeKg: 5000, FerramentaCodigo: "T01", Posicao: 2}
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(current, nil)
		repo.EXPECT().UpdateEdit(gomock.Any(), "op-1", 7500.0, "T01").Return(entities.Order{ID: "op-1", QuantidadeKg: 7500, FerramentaCodigo: "T01", Posicao: 2}, nil)

		nova := 7500.0
		got, err := uc.EditOrder(context.Background(), " op-1 ", OrderPatch{QuantidadeKg: &nova})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.QuantidadeKg != 7500 || got.Posicao != 2 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("clearing the tool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		current := entities.Order{ID: "op-1", QuantidadeKg: 5000, FerramentaCodigo: "T01"}
		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(current, nil)
		repo.EXPECT().UpdateEdit(gomock.Any(), "op-1", 5000.0, "").Return(entities.Order{ID: "op-1", QuantidadeKg: 5000}, nil)

		vazia := ""
		got, err := uc.EditOrder(context.Background(), "op-1", OrderPatch{FerramentaCodigo: &vazia})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FerramentaCodigo != "" {
			t.Fatalf("expected cleared tool, got %q", got.FerramentaCodigo)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewSequencingUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "op-1").Return(entities.Order{}, errors.New("db"))

		if _, err := uc.EditOrder(context.Background(), "op-1", OrderPatch{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSequencingUseCase_ListJustifications(t *testing.T) {
	t.Run("invalid data", func(t *testing.T) {
		uc := NewSequencingUseCase(nil, nil)
		if _, err := uc.ListJustifications(context.Background(), ""); !errors.Is(err, ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("returns the date's records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		justRepo := mock_interfaces.NewMockIJustificationRepository(ctrl)
		uc := NewSequencingUseCase(nil, justRepo)

		justRepo.EXPECT().ListByData(gomock.Any(), "2024-01-02").Return([]entities.ReorderJustification{
			{ID: "just-1", Data: "2024-01-02", OrdemID: "op-1", Justificativa: "cliente critico"},
		}, nil)

		got, err := uc.ListJustifications(context.Background(), " 2024-01-02 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "just-1" {
			t.Fatalf("unexpected records: %+v", got)
		}
	})
}
