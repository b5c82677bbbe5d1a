package entities

import "time"

// PreviewItem is a staged, not-yet-committed candidate OP for a date.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (data-index): data
//
// A preview item never consumes capacity; it only becomes an Order on
// confirmation, at which point it leaves the preview collection.

type PreviewItem struct {
	ID            string    `json:"id"`
	Data          string    `json:"data"`
	OPTotvsCodigo string    `json:"op_totvs_codigo"`
	Produto       string    `json:"produto"`
	Liga          string    `json:"liga"`
	Tempera       string    `json:"tempera"`
	QuantidadeKg  float64   `json:"quantidade_kg"`
	TipoPosse     TipoPosse `json:"tipo_posse"`
	Cliente       string    `json:"cliente,omitempty"`
	DataEntrega   time.Time `json:"data_entrega"`

	FerramentaSugerida string `json:"ferramenta_sugerida,omitempty"`
	FerramentaManual   string `json:"ferramenta_manual,omitempty"`
	SemFerramenta      bool   `json:"sem_ferramenta"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResolveFerramenta picks the tool a confirmation would commit: manual
// override first, then the suggested one, else unset.
func (p PreviewItem) ResolveFerramenta() string {
	if p.FerramentaManual != "" {
		return p.FerramentaManual
	}
	return p.FerramentaSugerida
}

// RecomputeSemFerramenta refreshes the derived flag after any tool change.
func (p *PreviewItem) RecomputeSemFerramenta() {
	p.SemFerramenta = p.FerramentaManual == "" && p.FerramentaSugerida == ""
}
