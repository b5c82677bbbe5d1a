package routes

import (
	"extrusao_pcp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSequenciamento = "/sequenciamento"
	PathPreview        = "/preview"
	PathCapacidade     = "/capacidade"
)

func addSequencingRoutes(rg *gin.RouterGroup, h *handlers.SequencingHandler) {
	seq := rg.Group(PathSequenciamento)
	{
		seq.GET("", h.GetSchedule)
		seq.POST("/reordenar", h.ProposeReorder)
		seq.POST("/reordenar/confirmar", h.ConfirmReorder)
		seq.POST("/reordenar/cancelar", h.CancelReorder)
		seq.GET("/justificativas", h.ListJustifications)
		seq.PATCH("/:id", h.EditOrder)
	}
}

func addPreviewRoutes(rg *gin.RouterGroup, h *handlers.StagingHandler) {
	preview := rg.Group(PathPreview)
	{
		preview.POST("/importar", h.Import)
		preview.GET("", h.List)
		preview.POST("/confirmar", h.Confirm)
		preview.PATCH("/:data/:id", h.UpdateItem)
		preview.DELETE("/:data/:id", h.RemoveItem)
	}
}

func addCapacityRoutes(rg *gin.RouterGroup, h *handlers.CapacityHandler) {
	capacidade := rg.Group(PathCapacidade)
	{
		capacidade.GET("", h.GetUtilization)
		capacidade.PUT("/excecoes", h.UpsertException)
		capacidade.GET("/excecoes", h.GetException)
	}
}
