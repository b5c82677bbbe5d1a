package entities

import "time"

// TipoPosse identifies who owns the material of an OP.
//
// Domain notes:
//   - "casa" is in-house stock, "cliente" is customer-supplied stock.
//   - Each type has an independent capacity ceiling (see capacity.go).

type TipoPosse string

const (
	TipoPosseCasa    TipoPosse = "casa"
	TipoPosseCliente TipoPosse = "cliente"
)

// OrderStatus is the coarse lifecycle of an OP. StatusDetalhado refines it
// for stage derivation (see etapa.go).

type OrderStatus string

const (
	OrderStatusAguardando OrderStatus = "aguardando"
	OrderStatusEmProducao OrderStatus = "em_producao"
	OrderStatusConcluida  OrderStatus = "concluida"
)

// Order is a committed production order (OP) in a day's sequence.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (data-index): data
//
// Ordering:
//   - Posicao carries the list position inside the day's sequence; a reorder
//     rewrites positions for the whole date.

type Order struct {
	ID              string      `json:"id"`
	Codigo          string      `json:"codigo"`
	OPTotvsCodigo   string      `json:"op_totvs_codigo"`
	Produto         string      `json:"produto"`
	Liga            string      `json:"liga"`
	Tempera         string      `json:"tempera"`
	QuantidadeKg    float64     `json:"quantidade_kg"`
	TipoPosse       TipoPosse   `json:"tipo_posse"`
	Cliente         string      `json:"cliente,omitempty"`
	Data            string      `json:"data"`
	DataEntrega     time.Time   `json:"data_entrega"`
	Posicao         int         `json:"posicao"`
	FerramentaCodigo string     `json:"ferramenta_codigo,omitempty"`
	Status          OrderStatus `json:"status"`
	StatusDetalhado string      `json:"status_detalhado,omitempty"`

	// Etapas, when present, is an explicit per-stage map supplied by the
	// floor and trusted as-is after normalization (see DeriveEtapas).
	Etapas map[Etapa]EtapaStatus `json:"etapas,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ERPOrder is a newly-sourced candidate OP as delivered by the ERP boundary.
type ERPOrder struct {
	OPTotvsCodigo string    `json:"op_totvs_codigo"`
	Produto       string    `json:"produto"`
	Liga          string    `json:"liga"`
	Tempera       string    `json:"tempera"`
	QuantidadeKg  float64   `json:"quantidade_kg"`
	Cliente       string    `json:"cliente"`
	TipoPosse     TipoPosse `json:"tipo_posse"`
	DataEntrega   time.Time `json:"data_entrega"`
}
