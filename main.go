package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pgstay-backend/cache"
	"pgstay-backend/config"
	"pgstay-backend/controllers"
	"pgstay-backend/routes"
	"pgstay-backend/services"
)

func main() {
	// .env is optional; real deployments set environment variables.
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found, continuing with environment variables")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.ConnectDatabase(); err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	logrus.Info("database connection established, migrations applied")

	// Admin data cache: 30-minute TTL, persisted so a restart keeps warm
	// entries.
	cachePath := os.Getenv("ADMIN_CACHE_PATH")
	if cachePath == "" {
		cachePath = "admin-cache.json"
	}
	adminCache := cache.New(cache.WithStore(cache.NewFileStore(cachePath)))

	// Services.
	propertyService := services.NewPropertyService(db)
	roomService := services.NewRoomService(db)
	bedService := services.NewBedService(db)
	guestService := services.NewGuestService(db)
	auditService := services.NewSafetyAuditService(db)
	enquiryService := services.NewEnquiryService(db)
	discoveryService := services.NewDiscoveryService(db)
	uploadService := services.NewUploadService(config.LoadCloudinaryConfig())
	adminData := services.NewAdminDataService(roomService, enquiryService, guestService, auditService, adminCache)

	// Controllers.
	authController := controllers.NewAuthController(db)
	discoveryController := controllers.NewDiscoveryController(discoveryService)
	enquiryController := controllers.NewEnquiryController(enquiryService, propertyService, adminData)
	propertyController := controllers.NewPropertyController(propertyService, adminData)
	roomController := controllers.NewRoomController(roomService, propertyService, adminData)
	bedController := controllers.NewBedController(bedService, roomService, propertyService, adminData)
	guestController := controllers.NewGuestController(guestService, propertyService, adminData)
	auditController := controllers.NewSafetyAuditController(auditService, propertyService, adminData)
	uploadController := controllers.NewUploadController(uploadService)

	router := routes.SetupRouter(
		authController,
		discoveryController,
		enquiryController,
		propertyController,
		roomController,
		bedController,
		guestController,
		auditController,
		uploadController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("forced shutdown")
	}

	logrus.Info("server stopped")
}
