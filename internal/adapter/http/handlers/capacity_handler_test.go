package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"extrusao_pcp/internal/adapter/http/handlers/mocks"
	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCapacityHandler_GetUtilization(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid modo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICapacityUseCase(ctrl)
		h := NewCapacityHandler(uc)

		r := gin.New()
		r.GET("/v1/capacidade", h.GetUtilization)

		uc.EXPECT().GetUtilization(gomock.Any(), "2024-12-31", "mes").Return(entities.CapacityPanel{}, usecase.ErrInvalidModo)

		req := httptest.NewRequest(http.MethodGet, "/v1/capacidade?data=2024-12-31&modo=mes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("day panel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICapacityUseCase(ctrl)
		h := NewCapacityHandler(uc)

		r := gin.New()
		r.GET("/v1/capacidade", h.GetUtilization)

		uc.EXPECT().GetUtilization(gomock.Any(), "2024-12-31", "").Return(entities.CapacityPanel{
			Casa:    entities.NewCapacityUsage(15, 18),
			Cliente: entities.NewCapacityUsage(10, 12),
			Total:   entities.NewCapacityUsage(25, 30),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/capacidade?data=2024-12-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["casa"]["pct"] != 83.0 || body["casa"]["faixa"] != "atencao" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCapacityHandler_UpsertException(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing caps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICapacityUseCase(ctrl)
		h := NewCapacityHandler(uc)

		r := gin.New()
		r.PUT("/v1/capacidade/excecoes", h.UpsertException)

		req := httptest.NewRequest(http.MethodPut, "/v1/capacidade/excecoes", bytes.NewBufferString(`{"data":"2024-12-31"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICapacityUseCase(ctrl)
		h := NewCapacityHandler(uc)

		r := gin.New()
		r.PUT("/v1/capacidade/excecoes", h.UpsertException)

		uc.EXPECT().UpsertException(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, e entities.CapacityException) (entities.CapacityException, error) {
				if e.Data != "2024-12-31" || e.CasaCap != 10 || e.ClienteCap != 8 {
					t.Fatalf("unexpected exception payload: %+v", e)
				}
				return e, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/capacidade/excecoes", bytes.NewBufferString(`{"data":"2024-12-31","casa_cap":10,"cliente_cap":8,"motivo":"manutencao prensa"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCapacityHandler_GetException(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICapacityUseCase(ctrl)
		h := NewCapacityHandler(uc)

		r := gin.New()
		r.GET("/v1/capacidade/excecoes", h.GetException)

		uc.EXPECT().GetException(gomock.Any(), "2024-12-31").Return(entities.CapacityException{}, usecase.ErrExceptionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/capacidade/excecoes?data=2024-12-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICapacityUseCase(ctrl)
		h := NewCapacityHandler(uc)

		r := gin.New()
		r.GET("/v1/capacidade/excecoes", h.GetException)

		uc.EXPECT().GetException(gomock.Any(), "2024-12-31").Return(entities.CapacityException{
			Data: "2024-12-31", CasaCap: 10, ClienteCap: 8, Motivo: "manutencao prensa",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/capacidade/excecoes?data=2024-12-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["motivo"] != "manutencao prensa" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapCapacityError(t *testing.T) {
	if got := mapCapacityError(usecase.ErrInvalidModo); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCapacityError(usecase.ErrInvalidCapacidade); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCapacityError(usecase.ErrExceptionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCapacityError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
