// Package server assembles the repositories, services and handlers into the
// HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rvconsign/internal/config"
	"rvconsign/internal/domain/asset"
	"rvconsign/internal/domain/auth"
	"rvconsign/internal/domain/booking"
	"rvconsign/internal/domain/crm"
	"rvconsign/internal/domain/dashboard"
	"rvconsign/internal/domain/document"
	"rvconsign/internal/domain/expense"
	"rvconsign/internal/domain/inspection"
	"rvconsign/internal/domain/ledger"
	"rvconsign/internal/domain/maintenance"
	"rvconsign/internal/domain/message"
	"rvconsign/internal/domain/owner"
	"rvconsign/internal/domain/remittance"
	"rvconsign/internal/domain/renter"
	"rvconsign/internal/middleware"
	jwtsvc "rvconsign/internal/pkg/jwt"
	"rvconsign/internal/storage"
)

type Server struct {
	Router *gin.Engine
	CRM    *crm.Service
	Hub    *message.Hub
}

func New(cfg *config.Config, db *gorm.DB, deps Deps) *Server {
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	crmService := crm.NewService(deps.HubSpot, deps.Stages, crm.NewRepository(db), cfg.OutboxMaxTries)
	crmHandler := crm.NewHandler(crmService, cfg.HubSpot.ClientSecret)

	authRepo := auth.NewRepository(db)
	authHandler := auth.NewHandler(auth.NewService(authRepo, j), cfg.CookieName, cfg.CookieSecure, cfg.JWTTTL)

	ownerHandler := owner.NewHandler(owner.NewService(owner.NewRepository(db), crmService, deps.Notifier, cfg.Mail.TeamNotifyEmail))
	assetHandler := asset.NewHandler(asset.NewService(asset.NewRepository(db), crmService))
	renterHandler := renter.NewHandler(renter.NewService(renter.NewRepository(db)))
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewRepository(db), crmService))
	ledgerHandler := ledger.NewHandler(ledger.NewRepository(db))
	expenseHandler := expense.NewHandler(expense.NewService(expense.NewRepository(db)))
	remittanceHandler := remittance.NewHandler(remittance.NewService(remittance.NewRepository(db), deps.Notifier))
	inspectionHandler := inspection.NewHandler(inspection.NewService(inspection.NewRepository(db)))
	documentHandler := document.NewHandler(document.NewService(document.NewRepository(db), deps.Storage))
	maintenanceHandler := maintenance.NewHandler(maintenance.NewService(maintenance.NewRepository(db), crmService))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(dashboard.NewRepository(db)))

	hub := message.NewHub()
	messageHandler := message.NewHandler(message.NewService(message.NewRepository(db), hub))
	wsHandler := message.NewWSHandler(hub, j, cfg.CookieName)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if local, ok := deps.Storage.(*storage.Local); ok {
		r.Static(cfg.Storage.UploadsURLBase, local.BaseDir())
	}

	requireAuth := middleware.JWTAuth(j, cfg.CookieName)
	api := r.Group("/api")

	// public
	authHandler.RegisterRoutes(api, requireAuth)
	ownerHandler.RegisterPublicRoutes(api)
	crmHandler.RegisterWebhookRoutes(api)
	wsHandler.RegisterRoutes(api)

	protected := api.Group("", requireAuth, middleware.Scope(authRepo))
	{
		ownerHandler.RegisterRoutes(protected)
		assetHandler.RegisterRoutes(protected)
		renterHandler.RegisterRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
		ledgerHandler.RegisterRoutes(protected)
		expenseHandler.RegisterRoutes(protected)
		remittanceHandler.RegisterRoutes(protected)
		inspectionHandler.RegisterRoutes(protected)
		documentHandler.RegisterRoutes(protected)
		maintenanceHandler.RegisterRoutes(protected)
		messageHandler.RegisterRoutes(protected)
		dashboardHandler.RegisterRoutes(protected)
		crmHandler.RegisterRoutes(protected.Group("", middleware.StaffOnly()))
	}

	if cfg.InternalAPIToken != "" {
		internal := api.Group("/internal", middleware.InternalTokenAuth(cfg.InternalAPIToken, cfg.InternalAllowedIPs))
		crmHandler.RegisterInternalRoutes(internal)
	}

	return &Server{Router: r, CRM: crmService, Hub: hub}
}
