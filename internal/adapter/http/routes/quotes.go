package routes

import (
	"veggiequote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPrices   = "/prices"
	PathSettings = "/settings"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, sendHandler *handlers.SendHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CompileQuote)
		quotes.POST("/scan", quoteHandler.ScanQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/message", quoteHandler.UpdateMessage)
		quotes.PATCH("/:quote_id/confirm", quoteHandler.ConfirmQuote)

		quotes.POST("/:quote_id/send", sendHandler.SendQuote)
		quotes.GET("/:quote_id/autosend", sendHandler.GetAutoSendState)
		quotes.POST("/:quote_id/autosend/evaluate", sendHandler.EvaluateAutoSend)
		quotes.POST("/:quote_id/autosend/cancel", sendHandler.CancelAutoSend)
	}
}

func addPriceRoutes(rg *gin.RouterGroup, priceHandler *handlers.PriceHandler) {
	prices := rg.Group(PathPrices)
	{
		prices.GET("", priceHandler.ListPrices)
		prices.POST("", priceHandler.SavePrice)
		prices.PUT("", priceHandler.SavePrice)
		prices.DELETE("/:price_id", priceHandler.DeletePrice)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}
}
