package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "veggiequote/docs" // This will be auto-generated
	"veggiequote/internal/adapter/http/handlers"
	repository2 "veggiequote/internal/adapter/persistence/repository"
	"veggiequote/internal/infrastructure/database"
	"veggiequote/internal/infrastructure/recognition"
	"veggiequote/internal/infrastructure/whatsapp"
	"veggiequote/internal/usecase"
	"veggiequote/internal/usecase/interfaces"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	priceRepo := repository2.NewPriceDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	var recognizer interfaces.IOrderRecognizer
	gemini, err := recognition.NewGeminiRecognizer(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Order recognizer not configured: %v", err)
	} else {
		recognizer = gemini
	}

	gateway := whatsapp.NewCloudAPIGateway()
	opener := whatsapp.NewPassthroughOpener()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, priceRepo, settingsRepo, recognizer)
	priceUseCase := usecase.NewPriceUseCase(priceRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	dispatchUseCase := usecase.NewDispatchUseCase(quoteRepo, settingsRepo, gateway, opener)

	if err := priceUseCase.EnsureSeeded(context.Background()); err != nil {
		log.Printf("Default catalog seeding failed: %v", err)
	}

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, dispatchUseCase)
	sendHandler := handlers.NewSendHandler(dispatchUseCase)
	priceHandler := handlers.NewPriceHandler(priceUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase, quoteUseCase, dispatchUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, sendHandler)
	addPriceRoutes(v1, priceHandler)
	addSettingsRoutes(v1, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
