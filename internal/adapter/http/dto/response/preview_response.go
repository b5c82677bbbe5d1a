package response

import (
	"time"

	"extrusao_pcp/internal/domain/entities"
)

type PreviewItemResponse struct {
	ID                 string    `json:"id"`
	Data               string    `json:"data"`
	OPTotvsCodigo      string    `json:"op_totvs_codigo"`
	Produto            string    `json:"produto"`
	Liga               string    `json:"liga"`
	Tempera            string    `json:"tempera"`
	QuantidadeKg       float64   `json:"quantidade_kg"`
	TipoPosse          string    `json:"tipo_posse"`
	Cliente            string    `json:"cliente,omitempty"`
	DataEntrega        time.Time `json:"data_entrega"`
	FerramentaSugerida string    `json:"ferramenta_sugerida,omitempty"`
	FerramentaManual   string    `json:"ferramenta_manual,omitempty"`
	SemFerramenta      bool      `json:"sem_ferramenta"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPreviewItem(p entities.PreviewItem) PreviewItemResponse {
	return PreviewItemResponse{
		ID:                 p.ID,
		Data:               p.Data,
		OPTotvsCodigo:      p.OPTotvsCodigo,
		Produto:            p.Produto,
		Liga:               p.Liga,
		Tempera:            p.Tempera,
		QuantidadeKg:       p.QuantidadeKg,
		TipoPosse:          string(p.TipoPosse),
		Cliente:            p.Cliente,
		DataEntrega:        p.DataEntrega,
		FerramentaSugerida: p.FerramentaSugerida,
		FerramentaManual:   p.FerramentaManual,
		SemFerramenta:      p.SemFerramenta,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPreviewItems(items []entities.PreviewItem) []PreviewItemResponse {
	out := make([]PreviewItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPreviewItem(p))
	}
	return out
}
