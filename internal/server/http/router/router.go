package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/printeasy/printeasy/internal/server/http/handlers"
	"github.com/printeasy/printeasy/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	complaintHandler := handlers.NewComplaintHandler(facade)
	adminOrderHandler := handlers.NewAdminOrderHandler(facade)
	adminComplaintHandler := handlers.NewAdminComplaintHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/cart", cartHandler.Get)
	userAuth.PUT("/cart", cartHandler.Put)
	userAuth.DELETE("/cart", cartHandler.Clear)
	userAuth.POST("/checkout", orderHandler.Checkout)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:id", orderHandler.Get)
	userAuth.POST("/orders/:id/payment", orderHandler.ConfirmPayment)
	userAuth.POST("/orders/:id/payment/failure", orderHandler.ReportPaymentFailure)
	userAuth.POST("/orders/:id/cancel", orderHandler.Cancel)
	userAuth.POST("/complaints", complaintHandler.Create)
	userAuth.GET("/complaints", complaintHandler.List)
	userAuth.GET("/complaints/:id", complaintHandler.Get)
	userAuth.POST("/complaints/:id/responses", complaintHandler.Respond)
	userAuth.POST("/complaints/:id/rating", complaintHandler.Rate)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/orders", adminOrderHandler.List)
	admin.GET("/orders/:id", adminOrderHandler.Get)
	admin.POST("/orders/:id/status", adminOrderHandler.UpdateStatus)
	admin.POST("/orders/:id/notes", adminOrderHandler.AddNote)
	admin.POST("/orders/:id/refund", adminOrderHandler.ProcessRefund)
	admin.POST("/orders/:id/purge-files", adminOrderHandler.PurgeFiles)
	admin.GET("/complaints", adminComplaintHandler.List)
	admin.POST("/complaints/:id/responses", adminComplaintHandler.Respond)
	admin.POST("/complaints/:id/close", adminComplaintHandler.Close)

	return engine
}
