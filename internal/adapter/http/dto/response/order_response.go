package response

import (
	"time"

	"extrusao_pcp/internal/domain/entities"
)

type OrderResponse struct {
	ID               string            `json:"id"`
	Codigo           string            `json:"codigo"`
	OPTotvsCodigo    string            `json:"op_totvs_codigo"`
	Produto          string            `json:"produto"`
	Liga             string            `json:"liga"`
	Tempera          string            `json:"tempera"`
	QuantidadeKg     float64           `json:"quantidade_kg"`
	TipoPosse        string            `json:"tipo_posse"`
	Cliente          string            `json:"cliente,omitempty"`
	Data             string            `json:"data"`
	DataEntrega      time.Time         `json:"data_entrega"`
	Posicao          int               `json:"posicao"`
	FerramentaCodigo string            `json:"ferramenta_codigo,omitempty"`
	Status           string            `json:"status"`
	StatusDetalhado  string            `json:"status_detalhado,omitempty"`
	Etapas           map[string]string `json:"etapas,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	var etapas map[string]string
	if len(o.Etapas) > 0 {
		etapas = make(map[string]string, len(o.Etapas))
		for k, v := range o.Etapas {
			etapas[string(k)] = string(v)
		}
	}
	return OrderResponse{
		ID:               o.ID,
		Codigo:           o.Codigo,
		OPTotvsCodigo:    o.OPTotvsCodigo,
		Produto:          o.Produto,
		Liga:             o.Liga,
		Tempera:          o.Tempera,
		QuantidadeKg:     o.QuantidadeKg,
		TipoPosse:        string(o.TipoPosse),
		Cliente:          o.Cliente,
		Data:             o.Data,
		DataEntrega:      o.DataEntrega,
		Posicao:          o.Posicao,
		FerramentaCodigo: o.FerramentaCodigo,
		Status:           string(o.Status),
		StatusDetalhado:  o.StatusDetalhado,
		Etapas:           etapas,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// ReorderResponse carries both outcomes of a proposed move: an applied new
// sequence, or a parked proposal awaiting justification.
type ReorderResponse struct {
	Aplicado   bool              `json:"aplicado"`
	Sequencia  []OrderResponse   `json:"sequencia,omitempty"`
	PropostaID string            `json:"proposta_id,omitempty"`
	Violacao   *ViolacaoResponse `json:"violacao,omitempty"`
}

type ViolacaoResponse struct {
	OrdemID    string `json:"ordem_id"`
	DeIndice   int    `json:"de_indice"`
	ParaIndice int    `json:"para_indice"`
}

func FromViolation(v *entities.ReorderViolation) *ViolacaoResponse {
	if v == nil {
		return nil
	}
	return &ViolacaoResponse{OrdemID: v.OrdemID, DeIndice: v.DeIndice, ParaIndice: v.ParaIndice}
}

type JustificationResponse struct {
	ID            string    `json:"id"`
	Data          string    `json:"data"`
	OrdemID       string    `json:"ordem_id"`
	DeIndice      int       `json:"de_indice"`
	ParaIndice    int       `json:"para_indice"`
	Justificativa string    `json:"justificativa,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromJustifications(records []entities.ReorderJustification) []JustificationResponse {
	out := make([]JustificationResponse, 0, len(records))
	for _, j := range records {
		out = append(out, JustificationResponse{
			ID:            j.ID,
			Data:          j.Data,
			OrdemID:       j.OrdemID,
			DeIndice:      j.DeIndice,
			ParaIndice:    j.ParaIndice,
			Justificativa: j.Justificativa,
			CreatedAt:     j.CreatedAt,
		})
	}
	return out
}
