package response

import (
	"time"

	"extrusao_pcp/internal/domain/entities"
)

type CapacityUsageResponse struct {
	Ton   float64 `json:"ton"`
	Cap   float64 `json:"cap"`
	Pct   int     `json:"pct"`
	Faixa string  `json:"faixa"`
}

type CapacityPanelResponse struct {
	Casa    CapacityUsageResponse `json:"casa"`
	Cliente CapacityUsageResponse `json:"cliente"`
	Total   CapacityUsageResponse `json:"total"`
}

func FromCapacityPanel(p entities.CapacityPanel) CapacityPanelResponse {
	return CapacityPanelResponse{
		Casa:    fromCapacityUsage(p.Casa),
		Cliente: fromCapacityUsage(p.Cliente),
		Total:   fromCapacityUsage(p.Total),
	}
}

func fromCapacityUsage(u entities.CapacityUsage) CapacityUsageResponse {
	return CapacityUsageResponse{Ton: u.Ton, Cap: u.Cap, Pct: u.Pct, Faixa: string(u.Faixa)}
}

type CapacityExceptionResponse struct {
	Data       string    `json:"data"`
	CasaCap    float64   `json:"casa_cap"`
	ClienteCap float64   `json:"cliente_cap"`
	Motivo     string    `json:"motivo,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromCapacityException(e entities.CapacityException) CapacityExceptionResponse {
	return CapacityExceptionResponse{
		Data:       e.Data,
		CasaCap:    e.CasaCap,
		ClienteCap: e.ClienteCap,
		Motivo:     e.Motivo,
		UpdatedAt:  e.UpdatedAt,
	}
}
