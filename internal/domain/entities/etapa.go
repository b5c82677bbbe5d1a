package entities

// Etapa is one stage of the fixed extrusion pipeline.

type Etapa string

const (
	EtapaPrensa      Etapa = "prensa"
	EtapaSerra       Etapa = "serra"
	EtapaForno       Etapa = "forno"
	EtapaEsticadeira Etapa = "esticadeira"
	EtapaEmbalagem   Etapa = "embalagem"
)

// etapaCorte is a legacy alias still emitted by older floor terminals.
const etapaCorte Etapa = "corte"

// PipelineEtapas is the fixed processing order of an OP on the floor.
var PipelineEtapas = []Etapa{
	EtapaPrensa,
	EtapaSerra,
	EtapaForno,
	EtapaEsticadeira,
	EtapaEmbalagem,
}

type EtapaStatus string

const (
	EtapaAguardando EtapaStatus = "aguardando"
	EtapaEmProcesso EtapaStatus = "em_processo"
	EtapaConcluida  EtapaStatus = "concluido"
	EtapaProblema   EtapaStatus = "problema"
)

// statusDetalhadoEtapa maps known detailed statuses to the stage an OP is
// currently at. Unknown values intentionally fall through to "all waiting".
var statusDetalhadoEtapa = map[string]Etapa{
	"na_prensa":      EtapaPrensa,
	"em_prensa":      EtapaPrensa,
	"na_serra":       EtapaSerra,
	"em_corte":       EtapaSerra,
	"no_corte":       EtapaSerra,
	"no_forno":       EtapaForno,
	"em_forno":       EtapaForno,
	"na_esticadeira": EtapaEsticadeira,
	"em_esticadeira": EtapaEsticadeira,
	"em_embalagem":   EtapaEmbalagem,
	"na_embalagem":   EtapaEmbalagem,
}

// DeriveEtapas resolves the per-stage progress of an OP.
//
// Resolution order:
//  1. An explicit Etapas map on the order wins, normalized (corte->serra,
//     missing keys default to aguardando).
//  2. Status "concluida" marks every stage concluido.
//  3. A recognized StatusDetalhado places the OP at that stage: earlier
//     stages concluido, the stage itself em_processo, later ones aguardando.
//  4. Anything else degrades to all aguardando. The function never fails.
func DeriveEtapas(o Order) map[Etapa]EtapaStatus {
	if len(o.Etapas) > 0 {
		return normalizeEtapas(o.Etapas)
	}

	out := make(map[Etapa]EtapaStatus, len(PipelineEtapas))

	if o.Status == OrderStatusConcluida {
		for _, e := range PipelineEtapas {
			out[e] = EtapaConcluida
		}
		return out
	}

	atual, ok := statusDetalhadoEtapa[o.StatusDetalhado]
	if !ok {
		for _, e := range PipelineEtapas {
			out[e] = EtapaAguardando
		}
		return out
	}

	passou := false
	for _, e := range PipelineEtapas {
		switch {
		case e == atual:
			out[e] = EtapaEmProcesso
			passou = true
		case passou:
			out[e] = EtapaAguardando
		default:
			out[e] = EtapaConcluida
		}
	}
	return out
}

func normalizeEtapas(in map[Etapa]EtapaStatus) map[Etapa]EtapaStatus {
	out := make(map[Etapa]EtapaStatus, len(PipelineEtapas))
	for _, e := range PipelineEtapas {
		out[e] = EtapaAguardando
	}
	for k, v := range in {
		if k == etapaCorte {
			k = EtapaSerra
		}
		if _, ok := out[k]; ok {
			out[k] = v
		}
	}
	return out
}
