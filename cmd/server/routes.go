package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "github.com/zakariadrk66/BTP/internal/auth/handler"
	"github.com/zakariadrk66/BTP/internal/config"
	"github.com/zakariadrk66/BTP/internal/middleware"
	"github.com/zakariadrk66/BTP/internal/procurement/handler"
)

func registerRoutes(r *gin.Engine, h *handler.Handlers, authH *authhandler.AuthHandler, cfg *config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": Version,
		})
	})

	v1 := r.Group("/api/v1")

	// Auth, public
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/2fa/verify-login", authH.VerifyTwoFactorLogin)
		auth.POST("/refresh", authH.Refresh)
	}

	// Everything else requires a valid token.
	api := v1.Group("")
	api.Use(middleware.JWTAuth(cfg.JWT.Secret))

	authed := api.Group("/auth")
	{
		authed.GET("/me", authH.Me)
		authed.GET("/2fa/status", authH.TwoFactorStatus)
		authed.POST("/2fa/setup", authH.SetupTwoFactor)
		authed.POST("/2fa/verify-setup", authH.VerifyTwoFactorSetup)
		authed.POST("/2fa/disable", authH.DisableTwoFactor)
	}

	suppliers := api.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", h.Project.List)
		projects.POST("", h.Project.Create)
		projects.GET("/:id", h.Project.Get)
		projects.PUT("/:id", h.Project.Update)
		projects.DELETE("/:id", h.Project.Delete)
	}

	articles := api.Group("/articles")
	{
		articles.GET("", h.Article.List)
		articles.POST("", h.Article.Create)
		articles.GET("/:sku", h.Article.Get)
		articles.PUT("/:sku", h.Article.Update)
		articles.DELETE("/:sku", h.Article.Delete)
	}

	requests := api.Group("/purchase-requests")
	{
		requests.GET("", h.Request.List)
		requests.POST("", h.Request.Create)
		requests.GET("/:id", h.Request.Get)
		requests.PUT("/:id", h.Request.Update)
		requests.DELETE("/:id", h.Request.Delete)
		requests.POST("/:id/approve", h.Request.Approve)
		requests.POST("/:id/flag", h.Request.Flag)
	}

	quotations := api.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
	}

	orders := api.Group("/purchase-orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/export", h.Order.Export)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
		orders.POST("/:id/send", h.Order.Send)
		orders.POST("/:id/confirm", h.Order.Confirm)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.POST("/:id/validate", h.Invoice.Validate)
	}

	receipts := api.Group("/goods-receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.PUT("/:id", h.Receipt.Update)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.POST("/:id/validate-delivery", h.Receipt.ValidateDelivery)
	}
}
