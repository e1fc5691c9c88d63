package routes

import (
	"log"
	"os"
	"strconv"

	_ "rede_saude/docs" // This will be auto-generated
	"rede_saude/internal/adapter/http/handlers"
	repository2 "rede_saude/internal/adapter/persistence/repository"
	"rede_saude/internal/infrastructure/address"
	"rede_saude/internal/infrastructure/database"
	"rede_saude/internal/infrastructure/payments"
	"rede_saude/internal/infrastructure/settlement"
	"rede_saude/internal/usecase"

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

	planRepo := repository2.NewPlanDynamoRepository(ddb)
	planUseCase := usecase.NewPlanUseCase(planRepo)

	accessToken := os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	gateway, err := payments.NewMercadoPagoGateway(accessToken)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}
	tokenizer, err := payments.NewMercadoPagoTokenizer(accessToken)
	if err != nil {
		log.Fatalf("Mercado Pago tokenizer not configured: %v", err)
	}

	hub := settlement.NewHub()
	checkoutUseCase := usecase.NewCheckoutUseCase(planRepo, gateway, tokenizer, hub)

	planHandler := handlers.NewPlanHandler(planUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(hub, gateway)
	addressHandler := handlers.NewAddressHandler(address.NewViaCEPClient())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, planHandler, checkoutHandler, webhookHandler, addressHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
