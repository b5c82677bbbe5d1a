package entities

import "testing"

func TestDeriveEtapas_Concluida(t *testing.T) {
	got := DeriveEtapas(Order{Status: OrderStatusConcluida})
	if len(got) != len(PipelineEtapas) {
		t.Fatalf("expected %d stages, got %d", len(PipelineEtapas), len(got))
	}
	for _, e := range PipelineEtapas {
		if got[e] != EtapaConcluida {
			t.Fatalf("expected %s concluido, got %s", e, got[e])
		}
	}
}

func TestDeriveEtapas_StatusDetalhado(t *testing.T) {
	cases := []struct {
		name      string
		detalhado string
		want      map[Etapa]EtapaStatus
	}{
		{
			name:      "no forno",
			detalhado: "no_forno",
			want: map[Etapa]EtapaStatus{
				EtapaPrensa:      EtapaConcluida,
				EtapaSerra:       EtapaConcluida,
				EtapaForno:       EtapaEmProcesso,
				EtapaEsticadeira: EtapaAguardando,
				EtapaEmbalagem:   EtapaAguardando,
			},
		},
		{
			name:      "na prensa",
			detalhado: "na_prensa",
			want: map[Etapa]EtapaStatus{
				EtapaPrensa:      EtapaEmProcesso,
				EtapaSerra:       EtapaAguardando,
				EtapaForno:       EtapaAguardando,
				EtapaEsticadeira: EtapaAguardando,
				EtapaEmbalagem:   EtapaAguardando,
			},
		},
		{
			name:      "em corte maps to serra",
			detalhado: "em_corte",
			want: map[Etapa]EtapaStatus{
				EtapaPrensa:      EtapaConcluida,
				EtapaSerra:       EtapaEmProcesso,
				EtapaForno:       EtapaAguardando,
				EtapaEsticadeira: EtapaAguardando,
				EtapaEmbalagem:   EtapaAguardando,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveEtapas(Order{Status: OrderStatusEmProducao, StatusDetalhado: tc.detalhado})
			for e, want := range tc.want {
				if got[e] != want {
					t.Fatalf("stage %s: expected %s, got %s", e, want, got[e])
				}
			}
		})
	}
}

func TestDeriveEtapas_UnknownStatusDegradesToWaiting(t *testing.T) {
	got := DeriveEtapas(Order{Status: OrderStatusEmProducao, StatusDetalhado: "em_transporte"})
	for _, e := range PipelineEtapas {
		if got[e] != EtapaAguardando {
			t.Fatalf("expected %s aguardando, got %s", e, got[e])
		}
	}
}

func TestDeriveEtapas_ExplicitMapWins(t *testing.T) {
	o := Order{
		Status: OrderStatusEmProducao,
		Etapas: map[Etapa]EtapaStatus{
			EtapaPrensa: EtapaConcluida,
			etapaCorte:  EtapaProblema,
		},
	}
	got := DeriveEtapas(o)
	if got[EtapaPrensa] != EtapaConcluida {
		t.Fatalf("expected prensa concluido, got %s", got[EtapaPrensa])
	}
	if got[EtapaSerra] != EtapaProblema {
		t.Fatalf("expected corte alias to land on serra as problema, got %s", got[EtapaSerra])
	}
	if got[EtapaForno] != EtapaAguardando || got[EtapaEmbalagem] != EtapaAguardando {
		t.Fatalf("expected missing keys to default to aguardando: %+v", got)
	}
	if _, ok := got[etapaCorte]; ok {
		t.Fatalf("corte must not survive normalization")
	}
}
