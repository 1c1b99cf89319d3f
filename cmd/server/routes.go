package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creator-pay.backend/internal/interfaces/http/handlers"
	"creator-pay.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	merchantHandler       *handlers.MerchantHandler
	webhookHandler        *handlers.WebhookHandler
	productHandler        *handlers.ProductHandler
	recommendationHandler *handlers.RecommendationHandler
	adminHandler          *handlers.AdminHandler
	authMiddleware        gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", c.GetHeader("Origin"))
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Merchant account routes (protected)
		merchant := v1.Group("/merchant")
		merchant.Use(d.authMiddleware)
		{
			merchant.POST("/onboard", middleware.IdempotencyMiddleware(), d.merchantHandler.Onboard)
			merchant.GET("/status", d.merchantHandler.Status)
			merchant.POST("/update", d.merchantHandler.Update)
			merchant.POST("/bank/sync", d.merchantHandler.SyncBank)
		}

		// Product routes (protected)
		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.POST("", d.productHandler.CreateProduct)
			products.GET("/:id/settings", d.productHandler.GetSettings)
		}

		// Recommendation routes (public)
		v1.POST("/recommendations", d.recommendationHandler.Recommend)

		// Webhook for the payment vendor (signature verified in the handler)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/vendor", d.webhookHandler.HandleVendorEvent)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.POST("/creators/:id/merchant/reset", d.adminHandler.ResetMerchantAccount)
			admin.GET("/creators/:id/compliance-requests", d.adminHandler.ListComplianceRequests)
		}
	}
}
