package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/bizbooks_backend/config"
	"github.com/mmdatafocus/bizbooks_backend/middlewares"
	"github.com/mmdatafocus/bizbooks_backend/models"
)

const defaultPort = "8080"

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	// Connect to backing stores after the listener is up; the connectors
	// retry with backoff so a slow MySQL/Redis never blocks startup.
	go func() {
		config.ConnectDatabaseWithRetry()
		if err := models.Migrate(config.GetDB()); err != nil {
			log.Printf("migration failed: %v", err)
		}
	}()
	go config.ConnectRedisWithRetry()

	router := gin.Default()
	router.Use(cors.New(corsConfig()))
	router.Use(middlewares.CorrelationMiddleware())

	router.GET("/healthz", healthHandler)
	router.POST("/auth/login", loginHandler)

	api := router.Group("/api", middlewares.AuthMiddleware())
	{
		api.GET("/customers", listCustomersHandler)
		api.POST("/customers", createCustomerHandler)
		api.GET("/customers/:id", getCustomerHandler)
		api.PUT("/customers/:id", updateCustomerHandler)
		api.DELETE("/customers/:id", deleteCustomerHandler)
		api.GET("/customers/:id/ledger", customerLedgerHandler)

		api.GET("/suppliers", listSuppliersHandler)
		api.GET("/suppliers/:id/ledger", supplierLedgerHandler)

		api.GET("/accounts", listMoneyAccountsHandler)
		api.POST("/accounts", createMoneyAccountHandler)
		api.GET("/accounts/:id", getMoneyAccountHandler)
		api.PUT("/accounts/:id", updateMoneyAccountHandler)
		api.GET("/accounts/:id/ledger", accountLedgerHandler)

		api.GET("/challans", listDeliveryChallansHandler)
		api.POST("/challans", createDeliveryChallanHandler)
		api.GET("/challans/:id", getDeliveryChallanHandler)
		api.PUT("/challans/:id/status", updateDeliveryChallanStatusHandler)
	}

	log.Printf("listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Business-Id", "X-Correlation-Id"}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

func healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
