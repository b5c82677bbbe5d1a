package entities

import "testing"

func TestNewCapacityUsage(t *testing.T) {
	t.Run("rounds percentage", func(t *testing.T) {
		u := NewCapacityUsage(15, 18)
		if u.Pct != 83 {
			t.Fatalf("expected 83, got %d", u.Pct)
		}
		if u.Faixa != FaixaAtencao {
			t.Fatalf("expected atencao, got %s", u.Faixa)
		}
	})

	t.Run("never clamps above 100", func(t *testing.T) {
		u := NewCapacityUsage(20, 18)
		if u.Pct != 111 {
			t.Fatalf("expected 111, got %d", u.Pct)
		}
		if u.Faixa != FaixaCritico {
			t.Fatalf("expected critico, got %s", u.Faixa)
		}
	})

	t.Run("zero cap reports zero", func(t *testing.T) {
		u := NewCapacityUsage(5, 0)
		if u.Pct != 0 {
			t.Fatalf("expected 0, got %d", u.Pct)
		}
	})
}

func TestClassificaFaixa(t *testing.T) {
	cases := []struct {
		pct  int
		want FaixaCapacidade
	}{
		{0, FaixaNormal},
		{70, FaixaNormal},
		{71, FaixaAtencao},
		{90, FaixaAtencao},
		{91, FaixaAlerta},
		{100, FaixaAlerta},
		{101, FaixaCritico},
		{250, FaixaCritico},
	}
	for _, tc := range cases {
		if got := ClassificaFaixa(tc.pct); got != tc.want {
			t.Fatalf("pct %d: expected %s, got %s", tc.pct, tc.want, got)
		}
	}
}

func TestComputePanel(t *testing.T) {
	orders := []Order{
		{QuantidadeKg: 10000, TipoPosse: TipoPosseCasa},
		{QuantidadeKg: 5000, TipoPosse: TipoPosseCasa},
		{QuantidadeKg: 8000, TipoPosse: TipoPosseCliente},
	}
	p := ComputePanel(orders, 18, 12, 30)
	if p.Casa.Ton != 15 || p.Cliente.Ton != 8 || p.Total.Ton != 23 {
		t.Fatalf("unexpected tonnage: %+v", p)
	}
	if p.Casa.Pct != 83 || p.Cliente.Pct != 67 || p.Total.Pct != 77 {
		t.Fatalf("unexpected percentages: %+v", p)
	}
	if p.Casa.Faixa != FaixaAtencao || p.Cliente.Faixa != FaixaNormal {
		t.Fatalf("unexpected banding: %+v", p)
	}
}
