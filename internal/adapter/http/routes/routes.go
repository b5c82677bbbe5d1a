package routes

import (
	"log"
	"os"
	"strconv"

	_ "extrusao_pcp/docs" // This will be auto-generated
	"extrusao_pcp/internal/adapter/http/handlers"
	repository2 "extrusao_pcp/internal/adapter/persistence/repository"
	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/infrastructure/database"
	"extrusao_pcp/internal/infrastructure/erp"
	"extrusao_pcp/internal/usecase"
	"extrusao_pcp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	previewRepo := repository2.NewPreviewDynamoRepository(ddb)
	justificationRepo := repository2.NewJustificationDynamoRepository(ddb)
	exceptionRepo := repository2.NewCapacityExceptionDynamoRepository(ddb)
	toolRulesRepo := repository2.NewToolRulesDynamoRepository(ddb)

	var erpGateway interfaces.IERPGateway
	totvsGateway, err := erp.NewTotvsGateway()
	if err != nil {
		log.Printf("TOTVS gateway not configured: %v", err)
	} else {
		erpGateway = totvsGateway
	}

	sequencingUseCase := usecase.NewSequencingUseCase(sequenceRepo, justificationRepo)
	stagingUseCase := usecase.NewStagingUseCase(previewRepo, sequenceRepo, toolRulesRepo, erpGateway)
	capacityUseCase := usecase.NewCapacityUseCase(sequenceRepo, exceptionRepo, capacityConfigFromEnv())

	sequencingHandler := handlers.NewSequencingHandler(sequencingUseCase)
	stagingHandler := handlers.NewStagingHandler(stagingUseCase)
	capacityHandler := handlers.NewCapacityHandler(capacityUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSequencingRoutes(v1, sequencingHandler)
	addPreviewRoutes(v1, stagingHandler)
	addCapacityRoutes(v1, capacityHandler)
}

// capacityConfigFromEnv reads the default tonnage ceilings. Week ceilings are
// independent settings, not day*7 (weekend shifts are planned separately).
func capacityConfigFromEnv() entities.CapacityConfig {
	return entities.CapacityConfig{
		CasaDia:       getenvFloat("CAPACIDADE_CASA_DIA", 18),
		ClienteDia:    getenvFloat("CAPACIDADE_CLIENTE_DIA", 12),
		CasaSemana:    getenvFloat("CAPACIDADE_CASA_SEMANA", 108),
		ClienteSemana: getenvFloat("CAPACIDADE_CLIENTE_SEMANA", 72),
		TotalSemana:   getenvFloat("CAPACIDADE_TOTAL_SEMANA", 180),
	}
}

func getenvFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, raw, def)
		return def
	}
	return v
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
