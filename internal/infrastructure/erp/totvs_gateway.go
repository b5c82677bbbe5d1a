package erp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase/interfaces"
)

var ErrMissingTotvsBaseURL = errors.New("missing TOTVS_BASE_URL")
var ErrTotvsGatewayNotConfigured = errors.New("totvs gateway not configured")

// TotvsGateway pulls released production orders from the TOTVS ERP.
//
// With ERP_GATEWAY_MOCK (or TOTVS_MOCK) enabled the gateway fabricates a
// deterministic batch per date, which keeps local and CI environments free
// of ERP connectivity.
type TotvsGateway struct {
	baseURL  string
	token    string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IERPGateway = (*TotvsGateway)(nil)

func NewTotvsGateway() (*TotvsGateway, error) {
	if isERPGatewayMockEnabled() {
		log.Printf("[erp][gateway] mock mode enabled")
		return &TotvsGateway{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("TOTVS_BASE_URL")), "/")
	if baseURL == "" {
		log.Printf("[erp][gateway] missing TOTVS_BASE_URL")
		return nil, ErrMissingTotvsBaseURL
	}
	log.Printf("[erp][gateway] TOTVS client initialized base_url=%s", baseURL)

	return &TotvsGateway{
		baseURL: baseURL,
		token:   strings.TrimSpace(os.Getenv("TOTVS_TOKEN")),
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type totvsOrderPayload struct {
	OPCodigo     string  `json:"op_codigo"`
	Produto      string  `json:"produto"`
	Liga         string  `json:"liga"`
	Tempera      string  `json:"tempera"`
	QuantidadeKg float64 `json:"quantidade_kg"`
	TipoPosse    string  `json:"tipo_posse"`
	Cliente      string  `json:"cliente"`
	DataEntrega  string  `json:"data_entrega"`
}

func (g *TotvsGateway) FetchNewOrders(ctx context.Context, data string) ([]entities.ERPOrder, error) {
	if g != nil && g.mockMode {
		log.Printf("[erp][gateway] mock fetch data=%s", data)
		return mockOrders(data), nil
	}

	if g == nil || g.client == nil {
		log.Printf("[erp][gateway] gateway not configured")
		return nil, ErrTotvsGatewayNotConfigured
	}
	log.Printf("[erp][gateway] fetch start data=%s", data)

	endpoint := fmt.Sprintf("%s/api/pcp/v1/ordens?data=%s", g.baseURL, url.QueryEscape(data))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[erp][gateway] fetch failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("[erp][gateway] fetch unexpected status=%d body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("totvs fetch: unexpected status %d", resp.StatusCode)
	}

	var payloads []totvsOrderPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		log.Printf("[erp][gateway] response decode failed err=%v", err)
		return nil, err
	}

	orders := make([]entities.ERPOrder, 0, len(payloads))
	for _, p := range payloads {
		dataEntrega, err := time.Parse("2006-01-02", p.DataEntrega)
		if err != nil {
			log.Printf("[erp][gateway] skipping op=%s invalid data_entrega=%q", p.OPCodigo, p.DataEntrega)
			continue
		}
		orders = append(orders, entities.ERPOrder{
			OPTotvsCodigo: p.OPCodigo,
			Produto:       p.Produto,
			Liga:          p.Liga,
			Tempera:       p.Tempera,
			QuantidadeKg:  p.QuantidadeKg,
			TipoPosse:     entities.TipoPosse(strings.ToLower(strings.TrimSpace(p.TipoPosse))),
			Cliente:       p.Cliente,
			DataEntrega:   dataEntrega,
		})
	}
	log.Printf("[erp][gateway] fetch success data=%s orders=%d", data, len(orders))
	return orders, nil
}

// mockOrders returns the same batch for the same date so that repeated
// imports exercise the staging merge path.
func mockOrders(data string) []entities.ERPOrder {
	base, err := time.Parse("2006-01-02", data)
	if err != nil {
		base = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return []entities.ERPOrder{
		{
			OPTotvsCodigo: "OP-" + data + "-001",
			Produto:       "perfil estrutural 40x40",
			Liga:          "6063",
			Tempera:       "t5",
			QuantidadeKg:  2400,
			TipoPosse:     entities.TipoPosseCasa,
			DataEntrega:   base.AddDate(0, 0, 3),
		},
		{
			OPTotvsCodigo: "OP-" + data + "-002",
			Produto:       "tubo redondo 25mm",
			Liga:          "6061",
			Tempera:       "t6",
			QuantidadeKg:  1150,
			TipoPosse:     entities.TipoPosseCliente,
			Cliente:       "metalsul",
			DataEntrega:   base.AddDate(0, 0, 1),
		},
		{
			OPTotvsCodigo: "OP-" + data + "-003",
			Produto:       "barra chata 50x5",
			Liga:          "6351",
			Tempera:       "t4",
			QuantidadeKg:  800,
			TipoPosse:     entities.TipoPosseCliente,
			Cliente:       "alufer",
			DataEntrega:   base.AddDate(0, 0, 5),
		},
	}
}

func isERPGatewayMockEnabled() bool {
	for _, key := range []string{"ERP_GATEWAY_MOCK", "TOTVS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
