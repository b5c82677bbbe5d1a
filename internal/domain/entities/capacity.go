package entities

import (
	"math"
	"time"
)

// CapacityConfig holds the default tonnage ceilings supplied at wiring time.
//
// Week ceilings are independent constants, not day*7: the plant plans weekend
// shifts separately from the weekday default.
type CapacityConfig struct {
	CasaDia       float64
	ClienteDia    float64
	CasaSemana    float64
	ClienteSemana float64
	TotalSemana   float64
}

// CapacityException overrides the default day ceilings for one date.
//
// Storage model (DynamoDB):
//   - PK: data (YYYY-MM-DD)
type CapacityException struct {
	Data       string    `json:"data"`
	CasaCap    float64   `json:"casa_cap"`
	ClienteCap float64   `json:"cliente_cap"`
	Motivo     string    `json:"motivo,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FaixaCapacidade is the advisory severity band of a utilization percentage.
// Capacity is never a hard block on scheduling.

type FaixaCapacidade string

const (
	FaixaNormal  FaixaCapacidade = "normal"
	FaixaAtencao FaixaCapacidade = "atencao"
	FaixaAlerta  FaixaCapacidade = "alerta"
	FaixaCritico FaixaCapacidade = "critico"
)

// ClassificaFaixa bands a utilization percentage. Every surface that shows
// capacity uses this same function.
func ClassificaFaixa(pct int) FaixaCapacidade {
	switch {
	case pct <= 70:
		return FaixaNormal
	case pct <= 90:
		return FaixaAtencao
	case pct <= 100:
		return FaixaAlerta
	default:
		return FaixaCritico
	}
}

// CapacityUsage is one bucket's utilization. Pct is never clamped; callers
// may clamp only the rendered bar length.
type CapacityUsage struct {
	Ton   float64         `json:"ton"`
	Cap   float64         `json:"cap"`
	Pct   int             `json:"pct"`
	Faixa FaixaCapacidade `json:"faixa"`
}

func NewCapacityUsage(ton, cap float64) CapacityUsage {
	pct := 0
	if cap > 0 {
		pct = int(math.Round(ton / cap * 100))
	}
	return CapacityUsage{Ton: ton, Cap: cap, Pct: pct, Faixa: ClassificaFaixa(pct)}
}

// CapacityPanel is the casa/cliente/total triple consumed by the board.
type CapacityPanel struct {
	Casa    CapacityUsage `json:"casa"`
	Cliente CapacityUsage `json:"cliente"`
	Total   CapacityUsage `json:"total"`
}

// ComputePanel sums committed order quantities (kg -> ton) by ownership type
// against the given ceilings.
func ComputePanel(orders []Order, casaCap, clienteCap, totalCap float64) CapacityPanel {
	var casaTon, clienteTon float64
	for _, o := range orders {
		ton := o.QuantidadeKg / 1000
		if ton < 0 {
			continue
		}
		switch o.TipoPosse {
		case TipoPosseCliente:
			clienteTon += ton
		default:
			casaTon += ton
		}
	}
	return CapacityPanel{
		Casa:    NewCapacityUsage(casaTon, casaCap),
		Cliente: NewCapacityUsage(clienteTon, clienteCap),
		Total:   NewCapacityUsage(casaTon+clienteTon, totalCap),
	}
}
